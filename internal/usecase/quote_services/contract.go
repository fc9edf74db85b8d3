package quote_services

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Catalog справочник филиалов и услуг
type Catalog interface {
	GetBranch(key string) (domain.Branch, error)
	ListServices() []domain.Service
}

// Pricer считает цены со скидкой филиала
type Pricer interface {
	Quote(branchKey string, services []domain.Service) []domain.PricedService
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
