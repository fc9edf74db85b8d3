package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNotFound           = "филиал, слот или услуга не найдены"
	msgEmptySelection     = "не выбрано ни одной услуги"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer=%s, error=%v", req.CustomerName, err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty selection: customer=%s", req.CustomerName)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createBooking.ErrNotFound):
			h.logger.Warn("POST /bookings - Not found: customer=%s, branch=%s, error=%v", req.CustomerName, req.BranchKey, err)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%s, branch=%s, error=%v",
				req.CustomerName, req.BranchKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer=%s, branch=%s",
		result.ID, result.CustomerName, result.BranchKey)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
