package app

import (
	"fmt"
	"sync"
	"time"

	"hotel_desk/internal/domain"
)

// ReservationEngine owns every reservation and drives room status through the lifecycle.
// Each mutating call runs under one lock, so the overlap and per-client cap checks
// see the same state as the write that follows them.
type ReservationEngine struct {
	mu           sync.Mutex
	rooms        *RoomDirectory
	clients      *ClientDirectory
	opts         options
	reservations []*domain.Reservation
}

func NewReservationEngine(rooms *RoomDirectory, clients *ClientDirectory, opts ...Option) *ReservationEngine {
	return &ReservationEngine{rooms: rooms, clients: clients, opts: buildOptions(opts)}
}

// Create books roomNumber for clientID over [checkIn, checkOut].
// Nothing is written until every check has passed.
func (e *ReservationEngine) Create(clientID string, roomNumber int, checkIn, checkOut time.Time) (domain.Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.opts.today()
	active, ok := e.clients.activeCount(clientID, today)
	if !ok {
		return domain.Reservation{}, domain.ErrClientNotFound
	}
	if active >= domain.MaxActiveReservations {
		return domain.Reservation{}, domain.ErrClientAtCapacity
	}
	room, ok := e.rooms.ByNumber(roomNumber)
	if !ok {
		return domain.Reservation{}, domain.ErrRoomNotFound
	}
	if room.Status != domain.RoomAvailable {
		return domain.Reservation{}, fmt.Errorf("room %d is %s: %w", room.Number, room.Status, domain.ErrRoomNotAvailable)
	}
	if err := validateStay(today, checkIn, checkOut); err != nil {
		return domain.Reservation{}, err
	}
	checkIn, checkOut = domain.Day(checkIn), domain.Day(checkOut)
	if e.overlaps(roomNumber, checkIn, checkOut) {
		return domain.Reservation{}, domain.ErrDatesOverlap
	}

	r := &domain.Reservation{
		ID:         e.opts.newID(),
		RoomNumber: room.Number,
		ClientID:   clientID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: domain.DaysBetween(checkIn, checkOut) * room.NightlyRate(),
	}
	if err := e.rooms.SetStatus(room.Number, domain.RoomReserved); err != nil {
		return domain.Reservation{}, err
	}
	e.clients.attach(clientID, r)
	e.reservations = append(e.reservations, r)
	return *r, nil
}

// Cancel is allowed up to and including the check-in day.
func (e *ReservationEngine) Cancel(id string) (domain.Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.find(id)
	if r == nil {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	if r.Cancelled {
		return domain.Reservation{}, domain.ErrAlreadyCancelled
	}
	if e.opts.today().After(r.CheckIn) {
		return domain.Reservation{}, domain.ErrAlreadyStarted
	}
	if err := e.rooms.SetStatus(r.RoomNumber, domain.RoomAvailable); err != nil {
		return domain.Reservation{}, err
	}
	r.Cancelled = true
	return *r, nil
}

// CheckIn marks the room Occupied on any day from check-in through check-out.
// The room is not required to be Reserved beforehand.
func (e *ReservationEngine) CheckIn(id string) (domain.Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.find(id)
	if r == nil {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	if r.Cancelled {
		return domain.Reservation{}, domain.ErrCancelledReservation
	}
	today := e.opts.today()
	if today.Before(r.CheckIn) {
		return domain.Reservation{}, domain.ErrTooEarlyToCheckIn
	}
	if today.After(r.CheckOut) {
		return domain.Reservation{}, domain.ErrTooLateToCheckIn
	}
	if err := e.rooms.SetStatus(r.RoomNumber, domain.RoomOccupied); err != nil {
		return domain.Reservation{}, err
	}
	return *r, nil
}

func (e *ReservationEngine) CheckOut(id string) (domain.Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.find(id)
	if r == nil {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	if r.Cancelled {
		return domain.Reservation{}, domain.ErrCancelledReservation
	}
	room, ok := e.rooms.ByNumber(r.RoomNumber)
	if !ok {
		return domain.Reservation{}, domain.ErrRoomNotFound
	}
	if room.Status != domain.RoomOccupied {
		return domain.Reservation{}, domain.ErrNotCheckedIn
	}
	if err := e.rooms.SetStatus(r.RoomNumber, domain.RoomAvailable); err != nil {
		return domain.Reservation{}, err
	}
	return *r, nil
}

func (e *ReservationEngine) ByID(id string) (domain.Reservation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if r := e.find(id); r != nil {
		return *r, true
	}
	return domain.Reservation{}, false
}

func (e *ReservationEngine) All() []domain.Reservation {
	return e.snapshot(func(*domain.Reservation) bool { return true })
}

// ByRoom lists every reservation ever made for the room, cancelled ones included.
func (e *ReservationEngine) ByRoom(number int) []domain.Reservation {
	return e.snapshot(func(r *domain.Reservation) bool { return r.RoomNumber == number })
}

// Today is the engine's notion of the current calendar day.
func (e *ReservationEngine) Today() time.Time { return e.opts.today() }

// Now is the engine's clock reading, used to stamp lifecycle events.
func (e *ReservationEngine) Now() time.Time { return e.opts.clock() }

// validateStay applies the date rules in order; the first failure wins.
func validateStay(today, checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return domain.ErrMissingDates
	}
	checkIn, checkOut = domain.Day(checkIn), domain.Day(checkOut)
	if checkIn.Before(today) {
		return domain.ErrCheckInPast
	}
	if !checkOut.After(checkIn) {
		return domain.ErrCheckOutBeforeCheckIn
	}
	if domain.DaysBetween(checkIn, checkOut) > domain.MaxStayDays {
		return domain.ErrStayTooLong
	}
	return nil
}

func (e *ReservationEngine) overlaps(roomNumber int, start, end time.Time) bool {
	for _, r := range e.reservations {
		if r.RoomNumber == roomNumber && r.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func (e *ReservationEngine) find(id string) *domain.Reservation {
	for _, r := range e.reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (e *ReservationEngine) snapshot(keep func(*domain.Reservation) bool) []domain.Reservation {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Reservation, 0, len(e.reservations))
	for _, r := range e.reservations {
		if keep(r) {
			out = append(out, *r)
		}
	}
	return out
}
