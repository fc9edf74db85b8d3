package leave_feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	leaveFeedback "github.com/m04kA/SMC-SalonService/internal/usecase/leave_feedback"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingRating      = "оценка обязательна"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgInvalidInput       = "некорректные данные отзыва"
	msgNotFound           = "бронирование не найдено"
	msgAlreadyRecorded    = "отзыв к этому бронированию уже оставлен"
)

type Handler struct {
	useCase LeaveFeedbackUseCase
	logger  Logger
}

func NewHandler(useCase LeaveFeedbackUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/feedback - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req LeaveFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Rating == nil {
		h.logger.Warn("POST /bookings/{id}/feedback - Missing rating: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgMissingRating)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &leaveFeedback.Request{
		BookingID: bookingID,
		Rating:    *req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		switch {
		case errors.Is(err, leaveFeedback.ErrInvalidRating):
			h.logger.Warn("POST /bookings/{id}/feedback - Invalid rating: booking_id=%d, rating=%v", bookingID, *req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, leaveFeedback.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/feedback - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, leaveFeedback.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/feedback - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, leaveFeedback.ErrAlreadyRecorded):
			h.logger.Warn("POST /bookings/{id}/feedback - Already recorded: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyRecorded)

		default:
			h.logger.Error("POST /bookings/{id}/feedback - Failed to record feedback: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/feedback - Feedback recorded: booking_id=%d, branch=%s",
		bookingID, result.Booking.BranchKey)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
