package selection

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Ledger выбор услуг клиента в рамках одной попытки бронирования.
// Отмена последнего выбора - это pop с конца того же среза, отдельного стека нет.
// Ledger принадлежит одной попытке и не разделяется между горутинами
type Ledger struct {
	items []domain.Service
}

// NewLedger создает пустой выбор
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add добавляет услугу в конец выбора
func (l *Ledger) Add(service domain.Service) {
	l.items = append(l.items, service)
}

// UndoLast удаляет и возвращает последнюю добавленную услугу.
// ok=false означает пустой выбор: состояние не меняется, вызов можно повторять
func (l *Ledger) UndoLast() (domain.Service, bool) {
	if len(l.items) == 0 {
		return domain.Service{}, false
	}
	last := l.items[len(l.items)-1]
	l.items[len(l.items)-1] = domain.Service{}
	l.items = l.items[:len(l.items)-1]
	return last, true
}

// Snapshot возвращает копию текущего выбора
func (l *Ledger) Snapshot() []domain.Service {
	return append([]domain.Service(nil), l.items...)
}
