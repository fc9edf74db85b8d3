package quote_services

import (
	"context"
	"fmt"
)

// UseCase use case для прайса филиала
type UseCase struct {
	catalog Catalog
	pricer  Pricer
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, pricer Pricer, logger Logger) *UseCase {
	return &UseCase{catalog: catalog, pricer: pricer, logger: logger}
}

// Execute считает цены всех услуг каталога в филиале
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	branch, err := uc.catalog.GetBranch(req.BranchKey)
	if err != nil {
		uc.logger.Warn("QuoteServices: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrBranchNotFound, req.BranchKey)
	}

	lines := uc.pricer.Quote(branch.Key, uc.catalog.ListServices())
	uc.logger.Info("QuoteServices: branch=%s, %d services", branch.Key, len(lines))

	return &Response{Branch: branch, Lines: lines}, nil
}
