package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для получения слотов бронирования.
// У слотов нет даты: визит всегда назначается через два дня после подтверждения
type UseCase struct {
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if req.BranchKey != "" {
		if _, err := uc.catalog.GetBranch(req.BranchKey); err != nil {
			uc.logger.Warn("GetAvailableSlots: %v", err)
			return nil, fmt.Errorf("%w: %q", ErrBranchNotFound, req.BranchKey)
		}
	}

	catalogSlots := uc.catalog.ListSlots()
	slots := make([]Slot, len(catalogSlots))
	for i, s := range catalogSlots {
		slots[i] = Slot{Key: s.Key, Label: s.Label}
	}

	visit := domain.VisitDateFor(uc.timeProvider.Now())
	uc.logger.Info("GetAvailableSlots: %d slots, branch=%q, visit date=%s",
		len(slots), req.BranchKey, visit.Format(domain.DateFormat))

	return &Response{
		BranchKey: req.BranchKey,
		VisitDate: visit,
		Slots:     slots,
	}, nil
}
