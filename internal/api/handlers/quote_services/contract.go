package quote_services

import (
	"context"

	quoteServices "github.com/m04kA/SMC-SalonService/internal/usecase/quote_services"
)

type QuoteServicesUseCase interface {
	Execute(ctx context.Context, req *quoteServices.Request) (*quoteServices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
