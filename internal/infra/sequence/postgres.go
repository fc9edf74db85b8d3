package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNextValue возвращается, когда не удалось получить значение последовательности
var ErrNextValue = errors.New("sequence: failed to get next value")

// RowQuerier *sql.DB или *sql.Tx
type RowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// PostgresGenerator выдает номера из последовательности PostgreSQL (nextval атомарен).
// Используется, когда бронирования хранятся в базе, чтобы номера не повторялись после рестарта
type PostgresGenerator struct {
	db       RowQuerier
	sequence string
}

// NewPostgresGenerator создает генератор поверх последовательности sequenceName
func NewPostgresGenerator(db RowQuerier, sequenceName string) *PostgresGenerator {
	return &PostgresGenerator{db: db, sequence: sequenceName}
}

// Next выдает следующий номер
func (g *PostgresGenerator) Next(ctx context.Context) (int64, error) {
	var id int64
	if err := g.db.QueryRowContext(ctx, "SELECT nextval($1::regclass)", g.sequence).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNextValue, g.sequence, err)
	}
	return id, nil
}
