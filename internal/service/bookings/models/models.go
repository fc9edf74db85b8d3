package models

import (
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// PriceRequest запрос на расчет стоимости выбранных услуг
type PriceRequest struct {
	CustomerName string
	BranchKey    string
	SlotKey      string
	Services     []domain.Service
}

// Draft оцененное, но еще не подтвержденное бронирование.
// Принадлежит одной попытке бронирования
type Draft struct {
	CustomerName string
	Branch       domain.Branch
	Slot         domain.Slot
	Lines        []domain.PricedService
	Total        int64

	mu     sync.Mutex
	status domain.BookingStatus
}

// NewDraft создает черновик в статусе priced
func NewDraft(customerName string, branch domain.Branch, slot domain.Slot, lines []domain.PricedService, total int64) *Draft {
	return &Draft{
		CustomerName: customerName,
		Branch:       branch,
		Slot:         slot,
		Lines:        lines,
		Total:        total,
		status:       domain.StatusPriced,
	}
}

// Status текущий статус черновика
func (d *Draft) Status() domain.BookingStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// Transition переводит черновик из from в to. Возвращает false, если статус не from
func (d *Draft) Transition(from, to domain.BookingStatus) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status != from {
		return false
	}
	d.status = to
	return true
}
