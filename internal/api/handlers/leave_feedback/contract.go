package leave_feedback

import (
	"context"

	leaveFeedback "github.com/m04kA/SMC-SalonService/internal/usecase/leave_feedback"
)

type LeaveFeedbackUseCase interface {
	Execute(ctx context.Context, req *leaveFeedback.Request) (*leaveFeedback.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
