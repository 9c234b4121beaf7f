package usecase

import (
	"context"
	"sync"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/hotelerr"
	"hotel-booking/internal/notifier"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They store values and hand out copies so a
// caller mutating a returned entity cannot bypass the repository.

type memRooms struct {
	mu    sync.Mutex
	rooms map[string]entity.Room
}

func newMemRooms() *memRooms {
	return &memRooms{rooms: make(map[string]entity.Room)}
}

func (m *memRooms) Create(_ context.Context, room *entity.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.RoomNumber]; ok {
		return hotelerr.Duplicatef("room %s already exists", room.RoomNumber)
	}
	m.rooms[room.RoomNumber] = *room
	return nil
}

func (m *memRooms) CreateIfAbsent(_ context.Context, room *entity.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.RoomNumber]; ok {
		return nil
	}
	m.rooms[room.RoomNumber] = *room
	return nil
}

func (m *memRooms) FindByNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomNumber]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (m *memRooms) FindAll(_ context.Context) ([]*entity.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rooms []*entity.Room
	for _, room := range m.rooms {
		r := room
		rooms = append(rooms, &r)
	}
	return rooms, nil
}

func (m *memRooms) SetOccupied(_ context.Context, roomNumber string, occupied bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomNumber]
	if !ok {
		return hotelerr.NotFoundf("room %s not found", roomNumber)
	}
	room.IsOccupied = occupied
	m.rooms[roomNumber] = room
	return nil
}

func (m *memRooms) Delete(_ context.Context, roomNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[roomNumber]; !ok {
		return hotelerr.NotFoundf("room %s not found", roomNumber)
	}
	delete(m.rooms, roomNumber)
	return nil
}

type memGuests struct {
	mu     sync.Mutex
	guests map[string]entity.Guest
}

func newMemGuests() *memGuests {
	return &memGuests{guests: make(map[string]entity.Guest)}
}

func (m *memGuests) Create(_ context.Context, guest *entity.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.guests[guest.GuestID]; ok {
		return hotelerr.Duplicatef("guest %s already registered", guest.GuestID)
	}
	m.guests[guest.GuestID] = *guest
	return nil
}

func (m *memGuests) CreateIfAbsent(_ context.Context, guest *entity.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.guests[guest.GuestID]; ok {
		return nil
	}
	m.guests[guest.GuestID] = *guest
	return nil
}

func (m *memGuests) FindByID(_ context.Context, guestID string) (*entity.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	guest, ok := m.guests[guestID]
	if !ok {
		return nil, nil
	}
	return &guest, nil
}

func (m *memGuests) FindAll(_ context.Context) ([]*entity.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var guests []*entity.Guest
	for _, guest := range m.guests {
		g := guest
		guests = append(guests, &g)
	}
	return guests, nil
}

type memBookings struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]entity.Booking
}

func newMemBookings() *memBookings {
	return &memBookings{bookings: make(map[uuid.UUID]entity.Booking)}
}

func (m *memBookings) Create(_ context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; ok {
		return hotelerr.Duplicatef("booking %s already exists", booking.ID.String())
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memBookings) CreateIfAbsent(_ context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; ok {
		return nil
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memBookings) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (m *memBookings) FindByRoom(_ context.Context, roomNumber string) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range m.bookings {
		if booking.RoomNumber == roomNumber {
			b := booking
			bookings = append(bookings, &b)
		}
	}
	return bookings, nil
}

func (m *memBookings) FindByGuest(_ context.Context, guestID string) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range m.bookings {
		if booking.GuestID == guestID {
			b := booking
			bookings = append(bookings, &b)
		}
	}
	return bookings, nil
}

func (m *memBookings) FindAll(_ context.Context) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range m.bookings {
		b := booking
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return hotelerr.NotFoundf("booking %s not found", id.String())
	}
	booking.Status = status
	m.bookings[id] = booking
	return nil
}

func (m *memBookings) UpdateTotal(_ context.Context, id uuid.UUID, total float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return hotelerr.NotFoundf("booking %s not found", id.String())
	}
	booking.TotalPrice = &total
	m.bookings[id] = booking
	return nil
}

type memPayments struct {
	mu       sync.Mutex
	payments map[uuid.UUID]entity.Payment
}

func newMemPayments() *memPayments {
	return &memPayments{payments: make(map[uuid.UUID]entity.Payment)}
}

func (m *memPayments) Create(_ context.Context, payment *entity.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; ok {
		return hotelerr.Duplicatef("payment %s already exists", payment.ID.String())
	}
	m.payments[payment.ID] = *payment
	return nil
}

func (m *memPayments) CreateIfAbsent(_ context.Context, payment *entity.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; ok {
		return nil
	}
	m.payments[payment.ID] = *payment
	return nil
}

func (m *memPayments) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, nil
	}
	return &payment, nil
}

func (m *memPayments) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var payments []*entity.Payment
	for _, payment := range m.payments {
		if payment.BookingID == bookingID {
			p := payment
			payments = append(payments, &p)
		}
	}
	return payments, nil
}

func (m *memPayments) FindAll(_ context.Context) ([]*entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var payments []*entity.Payment
	for _, payment := range m.payments {
		p := payment
		payments = append(payments, &p)
	}
	return payments, nil
}

func (m *memPayments) UpdateStatus(_ context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return hotelerr.NotFoundf("payment %s not found", id.String())
	}
	payment.Status = status
	m.payments[id] = payment
	return nil
}

// recordLocker tracks lease usage for assertions.
type recordLocker struct {
	mu       sync.Mutex
	acquired []string
	released int
}

func (l *recordLocker) Acquire(_ context.Context, roomNumber string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acquired = append(l.acquired, roomNumber)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.released++
	}, nil
}

// nopNotifier satisfies notifier.Notifier without delivering anything.
type nopNotifier struct{}

func (nopNotifier) BookingConfirmation(string, string) bool                    { return false }
func (nopNotifier) BookingCancellation(string, string) bool                    { return false }
func (nopNotifier) PaymentConfirmation(string, notifier.PaymentDetails) bool   { return false }
func (nopNotifier) CheckInReminder(string, string) bool                        { return false }
func (nopNotifier) CheckOutReminder(string, string) bool                       { return false }
func (nopNotifier) SMS(string, string) bool                                    { return false }

type testEnv struct {
	repo     *repository.Repository
	rooms    *memRooms
	bookings *memBookings
	payments *memPayments
	locker   *recordLocker
	service  *Service
}

func newTestEnv() *testEnv {
	rooms := newMemRooms()
	guests := newMemGuests()
	bookings := newMemBookings()
	payments := newMemPayments()

	repo := &repository.Repository{
		Room:    rooms,
		Guest:   guests,
		Booking: bookings,
		Payment: payments,
	}

	locker := &recordLocker{}
	service := NewService(repo, locker, nopNotifier{}, zap.NewNop())

	return &testEnv{
		repo:     repo,
		rooms:    rooms,
		bookings: bookings,
		payments: payments,
		locker:   locker,
		service:  service,
	}
}
