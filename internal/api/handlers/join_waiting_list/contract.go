package join_waiting_list

import "context"

type QueueService interface {
	JoinWaitingList(ctx context.Context, customerName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
