package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string   // Имя клиента
	BranchKey    string   // Ключ филиала
	SlotKey      string   // Ключ временного слота
	Services     []string // Названия услуг в порядке выбора
	UndoLast     bool     // Отменить последнюю выбранную услугу перед расчетом
	PaymentMode  string   // UPI, Card, CashOnVisit или 1/2/3
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID           int64
	CustomerName string
	BranchKey    string
	Slot         domain.Slot
	Services     []domain.PricedService
	Removed      *string // Услуга, снятая отменой, если была
	Total        int64
	PaymentMode  domain.PaymentMode
	Paid         bool // UPI и Card считаются оплаченными, наличные - оплата на месте
	Status       string
	VisitDate    time.Time
	CreatedAt    time.Time
}
