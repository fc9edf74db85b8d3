package history

import (
	"context"
	"sync"
)

// Repository журнал оказанных услуг по клиентам. Только добавление, порядок вставки сохраняется
type Repository struct {
	mu    sync.RWMutex
	lines map[string][]string
}

// NewRepository создает пустой журнал
func NewRepository() *Repository {
	return &Repository{lines: make(map[string][]string)}
}

// Append добавляет строки одним атомарным шагом: читатель увидит либо все строки, либо ни одной
func (r *Repository) Append(_ context.Context, customerName string, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[customerName] = append(r.lines[customerName], lines...)
	return nil
}

// ListByCustomer история клиента; для неизвестного клиента пустой срез, не ошибка
func (r *Repository) ListByCustomer(_ context.Context, customerName string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.lines[customerName]...), nil
}
