package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/hotelerr"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	CreateIfAbsent(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, payment_date, payment_method, status, transaction_id, created_at, updated_at`

func (r *paymentRepository) scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.PaymentDate,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.PaymentDate,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if isDuplicateKey(err) {
		return hotelerr.Duplicatef("payment %s already exists", payment.ID.String())
	}
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("create payment %s: %w", payment.ID.String(), err)
	}

	return nil
}

func (r *paymentRepository) CreateIfAbsent(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.PaymentDate,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("upsert payment %s: %w", payment.ID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	return r.collectPayments(rows)
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	return r.collectPayments(rows)
}

func (r *paymentRepository) collectPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for rows.Next() {
		payment, err := r.scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return hotelerr.NotFoundf("payment %s not found", id.String())
	}

	return nil
}
