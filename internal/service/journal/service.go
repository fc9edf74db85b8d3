package journal

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Summary сводка отзывов филиала
type Summary struct {
	BranchKey     string
	Count         int
	AverageRating float64 // 0, если отзывов нет
}

// Service чтение истории клиентов и журналов отзывов
type Service struct {
	history  HistoryRepository
	feedback FeedbackRepository
	catalog  Catalog
	logger   Logger
}

// NewService создает новый экземпляр сервиса журналов
func NewService(history HistoryRepository, feedback FeedbackRepository, catalog Catalog, logger Logger) *Service {
	return &Service{history: history, feedback: feedback, catalog: catalog, logger: logger}
}

// HistoryFor история клиента в порядке добавления. Неизвестный клиент - пустой список
func (s *Service) HistoryFor(ctx context.Context, customerName string) ([]string, error) {
	lines, err := s.history.ListByCustomer(ctx, customerName)
	if err != nil {
		s.logger.Error("HistoryFor: repository error for customer=%s: %v", customerName, err)
		return nil, fmt.Errorf("%w: HistoryFor - repository error: %v", ErrInternal, err)
	}
	return lines, nil
}

// FeedbackFor отзывы филиала в порядке добавления
func (s *Service) FeedbackFor(ctx context.Context, branchKey string) ([]domain.FeedbackEntry, error) {
	if _, err := s.catalog.GetBranch(branchKey); err != nil {
		s.logger.Warn("FeedbackFor: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrBranchNotFound, branchKey)
	}

	entries, err := s.feedback.ListByBranch(ctx, branchKey)
	if err != nil {
		s.logger.Error("FeedbackFor: repository error for branch=%s: %v", branchKey, err)
		return nil, fmt.Errorf("%w: FeedbackFor - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

// BranchSummary количество отзывов и средняя оценка филиала
func (s *Service) BranchSummary(ctx context.Context, branchKey string) (*Summary, error) {
	entries, err := s.FeedbackFor(ctx, branchKey)
	if err != nil {
		return nil, err
	}
	return Summarize(branchKey, entries), nil
}

// Summarize сводка по уже загруженным отзывам
func Summarize(branchKey string, entries []domain.FeedbackEntry) *Summary {
	sum := &Summary{BranchKey: branchKey, Count: len(entries)}
	if len(entries) == 0 {
		return sum
	}
	var total float64
	for _, e := range entries {
		total += e.Rating
	}
	// До сотых, чтобы в ответе не было хвостов вроде 4.333333333
	sum.AverageRating = math.Round(total/float64(len(entries))*100) / 100
	return sum
}
