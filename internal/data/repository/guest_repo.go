package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/hotelerr"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	CreateIfAbsent(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, guestID string) (*entity.Guest, error)
	FindAll(ctx context.Context) ([]*entity.Guest, error)
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (guest_id, name, email, phone)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		guest.GuestID,
		guest.Name,
		guest.Email,
		guest.Phone,
	)

	if isDuplicateKey(err) {
		return hotelerr.Duplicatef("guest %s already registered", guest.GuestID)
	}
	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("guest_id", guest.GuestID),
		)
		return fmt.Errorf("create guest %s: %w", guest.GuestID, err)
	}

	return nil
}

func (r *guestRepository) CreateIfAbsent(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (guest_id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guest_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		guest.GuestID,
		guest.Name,
		guest.Email,
		guest.Phone,
	)

	if err != nil {
		r.log.Error("Failed to upsert guest",
			zap.Error(err),
			zap.String("guest_id", guest.GuestID),
		)
		return fmt.Errorf("upsert guest %s: %w", guest.GuestID, err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, guestID string) (*entity.Guest, error) {
	query := `
		SELECT guest_id, name, email, phone
		FROM guests
		WHERE guest_id = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, guestID).Scan(
		&guest.GuestID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest",
			zap.Error(err),
			zap.String("guest_id", guestID),
		)
		return nil, fmt.Errorf("find guest %s: %w", guestID, err)
	}

	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context) ([]*entity.Guest, error) {
	query := `
		SELECT guest_id, name, email, phone
		FROM guests
		ORDER BY guest_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list guests", zap.Error(err))
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.GuestID,
			&guest.Name,
			&guest.Email,
			&guest.Phone,
		)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, &guest)
	}

	return guests, nil
}
