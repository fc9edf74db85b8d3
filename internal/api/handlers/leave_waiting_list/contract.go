package leave_waiting_list

import "context"

type QueueService interface {
	LeaveWaitingList(ctx context.Context) (string, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
