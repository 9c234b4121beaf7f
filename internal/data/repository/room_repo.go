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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	CreateIfAbsent(ctx context.Context, room *entity.Room) error
	FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	SetOccupied(ctx context.Context, roomNumber string, occupied bool) error
	Delete(ctx context.Context, roomNumber string) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (room_number, room_type, price_per_night, is_occupied)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		room.RoomNumber,
		room.RoomType,
		room.PricePerNight,
		room.IsOccupied,
	)

	if isDuplicateKey(err) {
		return hotelerr.Duplicatef("room %s already exists", room.RoomNumber)
	}
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) CreateIfAbsent(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (room_number, room_type, price_per_night, is_occupied)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (room_number) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		room.RoomNumber,
		room.RoomType,
		room.PricePerNight,
		room.IsOccupied,
	)

	if err != nil {
		r.log.Error("Failed to upsert room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("upsert room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `
		SELECT room_number, room_type, price_per_night, is_occupied
		FROM rooms
		WHERE room_number = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, roomNumber).Scan(
		&room.RoomNumber,
		&room.RoomType,
		&room.PricePerNight,
		&room.IsOccupied,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room %s: %w", roomNumber, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT room_number, room_type, price_per_night, is_occupied
		FROM rooms
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.RoomNumber,
			&room.RoomType,
			&room.PricePerNight,
			&room.IsOccupied,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) SetOccupied(ctx context.Context, roomNumber string, occupied bool) error {
	query := `UPDATE rooms SET is_occupied = $2 WHERE room_number = $1`

	result, err := r.db.Exec(ctx, query, roomNumber, occupied)
	if err != nil {
		r.log.Error("Failed to update room occupancy",
			zap.Error(err),
			zap.String("room_number", roomNumber),
			zap.Bool("occupied", occupied),
		)
		return fmt.Errorf("update room %s occupancy: %w", roomNumber, err)
	}

	if result.RowsAffected() == 0 {
		return hotelerr.NotFoundf("room %s not found", roomNumber)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, roomNumber string) error {
	query := `DELETE FROM rooms WHERE room_number = $1`

	result, err := r.db.Exec(ctx, query, roomNumber)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return fmt.Errorf("delete room %s: %w", roomNumber, err)
	}

	if result.RowsAffected() == 0 {
		return hotelerr.NotFoundf("room %s not found", roomNumber)
	}

	r.log.Info("Room deleted", zap.String("room_number", roomNumber))
	return nil
}
