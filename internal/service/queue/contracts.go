package queue

import "context"

// Repository хранилище очереди записей и листа ожидания.
// Изменяющие методы возвращают длину затронутой очереди после изменения
type Repository interface {
	EnqueueAppointment(ctx context.Context, customerName string) (int, error)
	PeekAppointment(ctx context.Context) (string, bool, error)
	DequeueAppointment(ctx context.Context) (name string, ok bool, remaining int, err error)
	CancelAppointment(ctx context.Context, customerName string) (removed bool, remaining int, err error)
	JoinWaitingList(ctx context.Context, customerName string) (int, error)
	PeekWaitingList(ctx context.Context) (string, bool, error)
	LeaveWaitingList(ctx context.Context) (name string, ok bool, remaining int, err error)
	Snapshot(ctx context.Context) (appointments []string, waiting []string, err error)
}

// Metrics гауги длины очередей
type Metrics interface {
	SetQueueLength(queue string, length int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
