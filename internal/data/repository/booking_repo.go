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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateIfAbsent(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByRoom(ctx context.Context, roomNumber string) ([]*entity.Booking, error)
	FindByGuest(ctx context.Context, guestID string) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	UpdateTotal(ctx context.Context, id uuid.UUID, total float64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, guest_id, room_number, check_in_date, check_out_date, status, total_price, created_at, updated_at`

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.GuestID,
		&booking.RoomNumber,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Status,
		&booking.TotalPrice,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.GuestID,
		booking.RoomNumber,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Status,
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if isDuplicateKey(err) {
		return hotelerr.Duplicatef("booking %s already exists", booking.ID.String())
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("room_number", booking.RoomNumber),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) CreateIfAbsent(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.GuestID,
		booking.RoomNumber,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Status,
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("upsert booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByRoom(ctx context.Context, roomNumber string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_number = $1
		ORDER BY check_in_date
	`

	rows, err := r.db.Query(ctx, query, roomNumber)
	if err != nil {
		r.log.Error("Failed to find bookings by room",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find bookings by room %s: %w", roomNumber, err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindByGuest(ctx context.Context, guestID string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE guest_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		r.log.Error("Failed to find bookings by guest",
			zap.Error(err),
			zap.String("guest_id", guestID),
		)
		return nil, fmt.Errorf("find bookings by guest %s: %w", guestID, err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return hotelerr.NotFoundf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) UpdateTotal(ctx context.Context, id uuid.UUID, total float64) error {
	query := `UPDATE bookings SET total_price = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, total)
	if err != nil {
		r.log.Error("Failed to update booking total",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.Float64("total", total),
		)
		return fmt.Errorf("update booking %s total: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return hotelerr.NotFoundf("booking %s not found", id.String())
	}

	return nil
}
