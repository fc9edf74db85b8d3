package get_services

import "github.com/m04kA/SMC-SalonService/internal/domain"

type CatalogService interface {
	ListServices() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
