package queue

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Имена очередей в метриках
const (
	AppointmentsQueue = "appointments"
	WaitingListQueue  = "waiting_list"
)

// State содержимое обеих очередей, голова - первый элемент
type State struct {
	Appointments []string
	WaitingList  []string
}

// Service очередь записей на прием и лист ожидания.
// Очереди независимы: из листа ожидания никто не переводится автоматически
type Service struct {
	repo    Repository
	metrics Metrics
	logger  Logger

	// mu держит изменение очереди и запись гаужа вместе, иначе гауж может отстать
	mu sync.Mutex
}

// NewService создает новый экземпляр сервиса очередей
func NewService(repo Repository, metrics Metrics, logger Logger) *Service {
	return &Service{repo: repo, metrics: metrics, logger: logger}
}

// EnqueueAppointment ставит клиента в конец очереди записей
func (s *Service) EnqueueAppointment(ctx context.Context, customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return fmt.Errorf("%w: customer name is empty", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	length, err := s.repo.EnqueueAppointment(ctx, customerName)
	if err != nil {
		s.logger.Error("EnqueueAppointment: repository error for customer=%s: %v", customerName, err)
		return fmt.Errorf("%w: EnqueueAppointment - repository error: %v", ErrInternal, err)
	}
	s.metrics.SetQueueLength(AppointmentsQueue, length)
	return nil
}

// CancelAppointment убирает последнюю запись клиента из очереди.
// Нужна для отката подтверждения, которое не удалось довести до конца
func (s *Service) CancelAppointment(ctx context.Context, customerName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, length, err := s.repo.CancelAppointment(ctx, customerName)
	if err != nil {
		s.logger.Error("CancelAppointment: repository error for customer=%s: %v", customerName, err)
		return fmt.Errorf("%w: CancelAppointment - repository error: %v", ErrInternal, err)
	}
	if !removed {
		s.logger.Warn("CancelAppointment: customer=%s is not in the queue", customerName)
		return nil
	}
	s.logger.Info("CancelAppointment: customer=%s removed", customerName)
	s.metrics.SetQueueLength(AppointmentsQueue, length)
	return nil
}

// PeekNextAppointment возвращает голову очереди записей без извлечения
func (s *Service) PeekNextAppointment(ctx context.Context) (string, bool, error) {
	name, ok, err := s.repo.PeekAppointment(ctx)
	if err != nil {
		s.logger.Error("PeekNextAppointment: repository error: %v", err)
		return "", false, fmt.Errorf("%w: PeekNextAppointment - repository error: %v", ErrInternal, err)
	}
	return name, ok, nil
}

// DequeueAppointment извлекает голову очереди записей (клиент обслужен)
func (s *Service) DequeueAppointment(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok, length, err := s.repo.DequeueAppointment(ctx)
	if err != nil {
		s.logger.Error("DequeueAppointment: repository error: %v", err)
		return "", false, fmt.Errorf("%w: DequeueAppointment - repository error: %v", ErrInternal, err)
	}
	if ok {
		s.logger.Info("DequeueAppointment: customer=%s served", name)
		s.metrics.SetQueueLength(AppointmentsQueue, length)
	}
	return name, ok, nil
}

// JoinWaitingList ставит клиента в конец листа ожидания
func (s *Service) JoinWaitingList(ctx context.Context, customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return fmt.Errorf("%w: customer name is empty", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	length, err := s.repo.JoinWaitingList(ctx, customerName)
	if err != nil {
		s.logger.Error("JoinWaitingList: repository error for customer=%s: %v", customerName, err)
		return fmt.Errorf("%w: JoinWaitingList - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("JoinWaitingList: customer=%s added", customerName)
	s.metrics.SetQueueLength(WaitingListQueue, length)
	return nil
}

// PeekWaitingList возвращает голову листа ожидания
func (s *Service) PeekWaitingList(ctx context.Context) (string, bool, error) {
	name, ok, err := s.repo.PeekWaitingList(ctx)
	if err != nil {
		s.logger.Error("PeekWaitingList: repository error: %v", err)
		return "", false, fmt.Errorf("%w: PeekWaitingList - repository error: %v", ErrInternal, err)
	}
	return name, ok, nil
}

// LeaveWaitingList извлекает голову листа ожидания
func (s *Service) LeaveWaitingList(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok, length, err := s.repo.LeaveWaitingList(ctx)
	if err != nil {
		s.logger.Error("LeaveWaitingList: repository error: %v", err)
		return "", false, fmt.Errorf("%w: LeaveWaitingList - repository error: %v", ErrInternal, err)
	}
	if ok {
		s.metrics.SetQueueLength(WaitingListQueue, length)
	}
	return name, ok, nil
}

// Snapshot содержимое обеих очередей
func (s *Service) Snapshot(ctx context.Context) (*State, error) {
	appts, waiting, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Snapshot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - repository error: %v", ErrInternal, err)
	}
	return &State{Appointments: appts, WaitingList: waiting}, nil
}
