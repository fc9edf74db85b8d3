package serve_next_appointment

import "context"

type QueueService interface {
	DequeueAppointment(ctx context.Context) (string, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
