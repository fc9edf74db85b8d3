package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/service/bookings"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
)

// UseCase use case для создания бронирования: выбор услуг, расчет, подтверждение
type UseCase struct {
	catalog  Catalog
	bookings BookingManager
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, bookings BookingManager, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, branch=%s, slot=%s, services=%v, undoLast=%t",
		req.CustomerName, req.BranchKey, req.SlotKey, req.Services, req.UndoLast)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	customer := strings.TrimSpace(req.CustomerName)

	// 2. Собираем выбор услуг
	ledger := selection.NewLedger()
	for _, name := range req.Services {
		service, err := uc.catalog.GetService(strings.TrimSpace(name))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				uc.logger.Warn("CreateBooking: %v", err)
				return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
			}
			uc.logger.Error("CreateBooking: failed to get service %q: %v", name, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		ledger.Add(service)
	}

	// 3. Отмена последней услуги. Пустой выбор просто ничего не меняет
	var removed *string
	if req.UndoLast {
		if service, ok := ledger.UndoLast(); ok {
			uc.logger.Info("CreateBooking: removed last service %s", service.Name)
			removed = &service.Name
		} else {
			uc.logger.Info("CreateBooking: nothing to undo")
		}
	}

	// 4. Расчет стоимости
	draft, err := uc.bookings.Price(ctx, &models.PriceRequest{
		CustomerName: customer,
		BranchKey:    req.BranchKey,
		SlotKey:      req.SlotKey,
		Services:     ledger.Snapshot(),
	})
	if err != nil {
		return nil, mapServiceError("price", err)
	}

	// 5. Подтверждение с выбранным способом оплаты
	booking, err := uc.bookings.Confirm(ctx, draft, bookings.ParsePaymentMode(req.PaymentMode))
	if err != nil {
		return nil, mapServiceError("confirm", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	return &Response{
		ID:           booking.ID,
		CustomerName: booking.CustomerName,
		BranchKey:    booking.BranchKey,
		Slot:         booking.Slot,
		Services:     booking.Services,
		Removed:      removed,
		Total:        booking.Total,
		PaymentMode:  booking.PaymentMode,
		Paid:         booking.PaymentMode.IsPrepaid(),
		Status:       string(booking.Status),
		VisitDate:    booking.VisitDate(),
		CreatedAt:    booking.CreatedAt,
	}, nil
}

func mapServiceError(step string, err error) error {
	switch {
	case errors.Is(err, bookings.ErrEmptySelection):
		return ErrEmptySelection
	case errors.Is(err, bookings.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, bookings.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: failed to %s booking: %v", ErrInternal, step, err)
}
