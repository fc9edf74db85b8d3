package get_branches

import "github.com/m04kA/SMC-SalonService/internal/domain"

type CatalogService interface {
	ListBranches() []domain.Branch
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
