package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// document is the on-disk shape of a full state export.
type document struct {
	Name     string            `json:"name"`
	SavedAt  time.Time         `json:"saved_at"`
	Rooms    []json.RawMessage `json:"rooms"`
	Guests   []json.RawMessage `json:"guests"`
	Bookings []json.RawMessage `json:"bookings"`
	Payments []json.RawMessage `json:"payments"`
}

type roomRecord struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsOccupied    bool    `json:"is_occupied"`
}

type guestRecord struct {
	GuestID string  `json:"guest_id"`
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

type bookingRecord struct {
	ID           string   `json:"booking_id"`
	Reference    string   `json:"reference"`
	GuestID      string   `json:"guest_id"`
	RoomNumber   string   `json:"room_number"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	Status       string   `json:"status"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
}

type paymentRecord struct {
	ID            string     `json:"payment_id"`
	BookingID     string     `json:"booking_id"`
	Amount        float64    `json:"amount"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Method        string     `json:"payment_method"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
}

// Manager exports the full hotel state to a JSON file and replays such a
// file back into the repositories at startup.
type Manager struct {
	path string
	name string
	repo *repository.Repository
	log  *zap.Logger
}

func NewManager(path, name string, repo *repository.Repository, log *zap.Logger) *Manager {
	return &Manager{
		path: path,
		name: name,
		repo: repo,
		log:  log.With(zap.String("component", "snapshot")),
	}
}

// Export writes the whole state to the configured path, replacing any
// previous snapshot.
func (m *Manager) Export(ctx context.Context) error {
	doc := document{
		Name:    m.name,
		SavedAt: time.Now(),
	}

	rooms, err := m.repo.Room.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to export rooms: %w", err)
	}
	for _, room := range rooms {
		raw, err := json.Marshal(roomRecord{
			RoomNumber:    room.RoomNumber,
			RoomType:      room.RoomType,
			PricePerNight: room.PricePerNight,
			IsOccupied:    room.IsOccupied,
		})
		if err != nil {
			return err
		}
		doc.Rooms = append(doc.Rooms, raw)
	}

	guests, err := m.repo.Guest.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to export guests: %w", err)
	}
	for _, guest := range guests {
		raw, err := json.Marshal(guestRecord{
			GuestID: guest.GuestID,
			Name:    guest.Name,
			Email:   guest.Email,
			Phone:   guest.Phone,
		})
		if err != nil {
			return err
		}
		doc.Guests = append(doc.Guests, raw)
	}

	bookings, err := m.repo.Booking.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to export bookings: %w", err)
	}
	for _, booking := range bookings {
		raw, err := json.Marshal(bookingRecord{
			ID:           booking.ID.String(),
			Reference:    booking.Reference,
			GuestID:      booking.GuestID,
			RoomNumber:   booking.RoomNumber,
			CheckInDate:  utils.FormatDate(booking.CheckInDate),
			CheckOutDate: utils.FormatDate(booking.CheckOutDate),
			Status:       string(booking.Status),
			TotalPrice:   booking.TotalPrice,
		})
		if err != nil {
			return err
		}
		doc.Bookings = append(doc.Bookings, raw)
	}

	payments, err := m.repo.Payment.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to export payments: %w", err)
	}
	for _, payment := range payments {
		raw, err := json.Marshal(paymentRecord{
			ID:            payment.ID.String(),
			BookingID:     payment.BookingID.String(),
			Amount:        payment.Amount,
			PaymentDate:   payment.PaymentDate,
			Method:        payment.Method,
			Status:        string(payment.Status),
			TransactionID: payment.TransactionID,
		})
		if err != nil {
			return err
		}
		doc.Payments = append(doc.Payments, raw)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", m.path, err)
	}

	m.log.Info("Snapshot exported",
		zap.String("path", m.path),
		zap.Int("rooms", len(doc.Rooms)),
		zap.Int("guests", len(doc.Guests)),
		zap.Int("bookings", len(doc.Bookings)),
		zap.Int("payments", len(doc.Payments)),
	)

	return nil
}

// Restore replays the snapshot at the configured path into the repositories.
// A missing file is not an error. Each record is decoded on its own, so one
// malformed entry is skipped and logged instead of aborting the bootstrap,
// and records that already exist are left untouched.
func (m *Manager) Restore(ctx context.Context) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			m.log.Info("No snapshot to restore", zap.String("path", m.path))
			return nil
		}
		return fmt.Errorf("failed to read snapshot %s: %w", m.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse snapshot %s: %w", m.path, err)
	}

	restored := 0
	restored += m.restoreRooms(ctx, doc.Rooms)
	restored += m.restoreGuests(ctx, doc.Guests)
	restored += m.restoreBookings(ctx, doc.Bookings)
	restored += m.restorePayments(ctx, doc.Payments)

	m.log.Info("Snapshot restored",
		zap.String("path", m.path),
		zap.String("name", doc.Name),
		zap.Int("records", restored),
	)

	return nil
}

func (m *Manager) restoreRooms(ctx context.Context, raws []json.RawMessage) int {
	restored := 0
	for i, raw := range raws {
		var rec roomRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.RoomNumber == "" {
			m.skip("room", i, err)
			continue
		}
		room := &entity.Room{
			RoomNumber:    rec.RoomNumber,
			RoomType:      rec.RoomType,
			PricePerNight: rec.PricePerNight,
			IsOccupied:    rec.IsOccupied,
		}
		if err := m.repo.Room.CreateIfAbsent(ctx, room); err != nil {
			m.skip("room", i, err)
			continue
		}
		restored++
	}
	return restored
}

func (m *Manager) restoreGuests(ctx context.Context, raws []json.RawMessage) int {
	restored := 0
	for i, raw := range raws {
		var rec guestRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.GuestID == "" {
			m.skip("guest", i, err)
			continue
		}
		guest := &entity.Guest{
			GuestID: rec.GuestID,
			Name:    rec.Name,
			Email:   rec.Email,
			Phone:   rec.Phone,
		}
		if err := m.repo.Guest.CreateIfAbsent(ctx, guest); err != nil {
			m.skip("guest", i, err)
			continue
		}
		restored++
	}
	return restored
}

func (m *Manager) restoreBookings(ctx context.Context, raws []json.RawMessage) int {
	restored := 0
	for i, raw := range raws {
		var rec bookingRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			m.skip("booking", i, err)
			continue
		}
		booking, err := bookingFromRecord(rec)
		if err != nil {
			m.skip("booking", i, err)
			continue
		}
		if err := m.repo.Booking.CreateIfAbsent(ctx, booking); err != nil {
			m.skip("booking", i, err)
			continue
		}
		restored++
	}
	return restored
}

func (m *Manager) restorePayments(ctx context.Context, raws []json.RawMessage) int {
	restored := 0
	for i, raw := range raws {
		var rec paymentRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			m.skip("payment", i, err)
			continue
		}
		payment, err := paymentFromRecord(rec)
		if err != nil {
			m.skip("payment", i, err)
			continue
		}
		if err := m.repo.Payment.CreateIfAbsent(ctx, payment); err != nil {
			m.skip("payment", i, err)
			continue
		}
		restored++
	}
	return restored
}

func (m *Manager) skip(kind string, index int, err error) {
	m.log.Warn("Skipping snapshot record",
		zap.String("kind", kind),
		zap.Int("index", index),
		zap.Error(err),
	)
}

func bookingFromRecord(rec bookingRecord) (*entity.Booking, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("bad booking_id %q: %w", rec.ID, err)
	}
	checkIn, err := utils.ParseDate(rec.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("bad check_in_date %q: %w", rec.CheckInDate, err)
	}
	checkOut, err := utils.ParseDate(rec.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("bad check_out_date %q: %w", rec.CheckOutDate, err)
	}

	status := entity.BookingStatus(rec.Status)
	switch status {
	case entity.BookingStatusBooked, entity.BookingStatusCheckedIn,
		entity.BookingStatusCheckedOut, entity.BookingStatusCancelled:
	default:
		return nil, fmt.Errorf("bad booking status %q", rec.Status)
	}

	now := time.Now()
	return &entity.Booking{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:    rec.Reference,
		GuestID:      rec.GuestID,
		RoomNumber:   rec.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		TotalPrice:   rec.TotalPrice,
	}, nil
}

func paymentFromRecord(rec paymentRecord) (*entity.Payment, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("bad payment_id %q: %w", rec.ID, err)
	}
	bookingID, err := uuid.Parse(rec.BookingID)
	if err != nil {
		return nil, fmt.Errorf("bad booking_id %q: %w", rec.BookingID, err)
	}

	status := entity.PaymentStatus(rec.Status)
	switch status {
	case entity.PaymentStatusPending, entity.PaymentStatusCompleted,
		entity.PaymentStatusConfirmed, entity.PaymentStatusRefunded:
	default:
		return nil, fmt.Errorf("bad payment status %q", rec.Status)
	}

	now := time.Now()
	return &entity.Payment{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     bookingID,
		Amount:        rec.Amount,
		PaymentDate:   rec.PaymentDate,
		Method:        rec.Method,
		Status:        status,
		TransactionID: rec.TransactionID,
	}, nil
}
