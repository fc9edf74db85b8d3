package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"customer_name",
	"branch_key",
	"slot_key",
	"slot_label",
	"services",
	"total",
	"payment_mode",
	"status",
	"feedback_rating",
	"feedback_review",
	"created_at",
	"updated_at",
}

// serviceLine JSON-представление строки услуги в колонке services
type serviceLine struct {
	Name       string `json:"name"`
	BasePrice  int64  `json:"basePrice"`
	Discount   int    `json:"discount"`
	FinalPrice int64  `json:"finalPrice"`
}

// Create сохраняет бронирование. ID уже выдан генератором номеров
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := buildInsert(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created := booking.Clone()
	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time
	return created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// GetByCustomer получает бронирования клиента в порядке номеров
func (r *Repository) GetByCustomer(ctx context.Context, customerName string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_name": customerName}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomer - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// AttachFeedback прикрепляет отзыв одним UPDATE с условием feedback_rating IS NULL,
// поэтому два параллельных запроса не могут оба пройти
func (r *Repository) AttachFeedback(ctx context.Context, id int64, feedback domain.Feedback, at time.Time) (*domain.Booking, error) {
	query, args, err := buildAttachFeedback(id, feedback, at)
	if err != nil {
		return nil, fmt.Errorf("%w: AttachFeedback - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: AttachFeedback - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: AttachFeedback - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо брони нет, либо отзыв уже есть
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrFeedbackAlreadyRecorded
	}

	return r.GetByID(ctx, id)
}

// DetachFeedback снимает отзыв, status и updated_at возвращаются к значениям подтверждения
func (r *Repository) DetachFeedback(ctx context.Context, id int64) error {
	query, args, err := buildDetachFeedback(id)
	if err != nil {
		return fmt.Errorf("%w: DetachFeedback - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DetachFeedback - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DetachFeedback - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Отзыва нет - снимать нечего, но сама бронь должна существовать
		_, err := r.GetByID(ctx, id)
		return err
	}
	return nil
}

// Delete удаляет бронирование по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func buildInsert(b *domain.Booking) (string, []interface{}, error) {
	services, err := marshalServices(b.Services)
	if err != nil {
		return "", nil, err
	}

	return psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_name",
			"branch_key",
			"slot_key",
			"slot_label",
			"services",
			"total",
			"payment_mode",
			"status",
		).
		Values(
			b.ID,
			b.CustomerName,
			b.BranchKey,
			b.Slot.Key,
			b.Slot.Label,
			string(services),
			b.Total,
			string(b.PaymentMode),
			string(b.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildAttachFeedback(id int64, feedback domain.Feedback, at time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update("bookings").
		Set("feedback_rating", feedback.Rating).
		Set("feedback_review", feedback.Review).
		Set("status", string(domain.StatusFeedbackRecorded)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"feedback_rating": nil}).
		ToSql()
}

func buildDetachFeedback(id int64) (string, []interface{}, error) {
	return psqlbuilder.Update("bookings").
		Set("feedback_rating", nil).
		Set("feedback_review", nil).
		Set("status", string(domain.StatusConfirmed)).
		Set("updated_at", squirrel.Expr("created_at")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"feedback_rating": nil}).
		ToSql()
}

func marshalServices(lines []domain.PricedService) ([]byte, error) {
	out := make([]serviceLine, len(lines))
	for i, l := range lines {
		out[i] = serviceLine{Name: l.Name, BasePrice: l.BasePrice, Discount: l.Discount, FinalPrice: l.FinalPrice}
	}
	return json.Marshal(out)
}

func unmarshalServices(data []byte) ([]domain.PricedService, error) {
	var lines []serviceLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	out := make([]domain.PricedService, len(lines))
	for i, l := range lines {
		out[i] = domain.PricedService{Name: l.Name, BasePrice: l.BasePrice, Discount: l.Discount, FinalPrice: l.FinalPrice}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		services    []byte
		paymentMode string
		status      string
		rating      sql.NullFloat64
		review      sql.NullString
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.BranchKey,
		&b.Slot.Key,
		&b.Slot.Label,
		&services,
		&b.Total,
		&paymentMode,
		&status,
		&rating,
		&review,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Services, err = unmarshalServices(services)
	if err != nil {
		return nil, err
	}
	b.PaymentMode = domain.PaymentMode(paymentMode)
	b.Status = domain.BookingStatus(status)
	if rating.Valid {
		b.Feedback = &domain.Feedback{Rating: rating.Float64, Review: review.String}
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
