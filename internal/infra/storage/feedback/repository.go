package feedback

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Repository журнал отзывов по филиалам. Только добавление, порядок вставки сохраняется
type Repository struct {
	mu      sync.RWMutex
	entries map[string][]domain.FeedbackEntry
}

// NewRepository создает пустой журнал
func NewRepository() *Repository {
	return &Repository{entries: make(map[string][]domain.FeedbackEntry)}
}

func (r *Repository) Append(_ context.Context, branchKey string, entry domain.FeedbackEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[branchKey] = append(r.entries[branchKey], entry)
	return nil
}

// ListByBranch отзывы филиала; если отзывов нет - пустой срез
func (r *Repository) ListByBranch(_ context.Context, branchKey string) ([]domain.FeedbackEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.FeedbackEntry{}, r.entries[branchKey]...), nil
}
