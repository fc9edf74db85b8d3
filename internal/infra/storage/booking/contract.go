package booking

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный набор методов *sql.DB / *sql.Tx, нужный репозиторию
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
