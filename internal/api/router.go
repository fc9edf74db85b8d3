package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking"
	getBranchFeedbackHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_branch_feedback"
	getBranchesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_branches"
	getCustomerHistoryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_customer_history"
	getQueueHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_queue"
	getServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_services"
	joinWaitingListHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/join_waiting_list"
	leaveFeedbackHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/leave_feedback"
	leaveWaitingListHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/leave_waiting_list"
	quoteServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/quote_services"
	serveNextHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/serve_next_appointment"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/app"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	leaveFeedbackUC "github.com/m04kA/SMC-SalonService/internal/usecase/leave_feedback"
	quoteServicesUC "github.com/m04kA/SMC-SalonService/internal/usecase/quote_services"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RouterOptions параметры HTTP слоя
type RouterOptions struct {
	MetricsEnabled bool
	MetricsPath    string
}

// NewRouter собирает use cases и handlers поверх салона и регистрирует маршруты
func NewRouter(salon *app.Salon, log Logger, opts RouterOptions) *mux.Router {
	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(salon.Catalog, salon.Bookings, log)
	leaveFeedbackUseCase := leaveFeedbackUC.NewUseCase(salon.Bookings, salon.Journal, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(salon.Catalog, log)
	quoteServicesUseCase := quoteServicesUC.NewUseCase(salon.Catalog, salon.Pricing, log)

	// Handlers
	getBranches := getBranchesHandler.NewHandler(salon.Catalog, log)
	getServices := getServicesHandler.NewHandler(salon.Catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	quoteServices := quoteServicesHandler.NewHandler(quoteServicesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(salon.Bookings, log)
	leaveFeedback := leaveFeedbackHandler.NewHandler(leaveFeedbackUseCase, log)
	getCustomerHistory := getCustomerHistoryHandler.NewHandler(salon.Journal, salon.Bookings, log)
	getBranchFeedback := getBranchFeedbackHandler.NewHandler(salon.Journal, log)
	getQueue := getQueueHandler.NewHandler(salon.Queue, log)
	serveNext := serveNextHandler.NewHandler(salon.Queue, log)
	joinWaitingList := joinWaitingListHandler.NewHandler(salon.Queue, log)
	leaveWaitingList := leaveWaitingListHandler.NewHandler(salon.Queue, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if opts.MetricsEnabled {
		r.Use(middleware.Metrics(salon.Metrics))
		r.Handle(opts.MetricsPath, salon.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/branches", getBranches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchKey}/services", quoteServices.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/feedback", leaveFeedback.Handle).Methods(http.MethodPost)

	// --- История и отзывы ---
	api.HandleFunc("/customers/{customerName}/history", getCustomerHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchKey}/feedback", getBranchFeedback.Handle).Methods(http.MethodGet)

	// --- Очереди ---
	api.HandleFunc("/queue", getQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/queue/next", serveNext.Handle).Methods(http.MethodPost)
	api.HandleFunc("/waiting-list", getQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/waiting-list", joinWaitingList.Handle).Methods(http.MethodPost)
	api.HandleFunc("/waiting-list/next", leaveWaitingList.Handle).Methods(http.MethodPost)

	return r
}
