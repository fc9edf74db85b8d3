package get_queue

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/queue"
)

type QueueService interface {
	Snapshot(ctx context.Context) (*queue.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
