package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_desk/internal/domain"
)

// Observer receives operation outcomes and room occupancy after each lifecycle call.
type Observer interface {
	ObserveOp(op, result string)
	SetRooms(counts map[domain.RoomStatus]int)
}

// FrontDesk is the entry point the menu uses for lifecycle transitions. It calls the engine,
// then journals the transition and updates metrics. Journal failures never fail the call.
type FrontDesk struct {
	engine  *ReservationEngine
	rooms   *RoomDirectory
	journal domain.Journal
	obs     Observer
	timeout time.Duration
}

// NewFrontDesk wires the desk. journal and obs may be nil.
func NewFrontDesk(e *ReservationEngine, rooms *RoomDirectory, j domain.Journal, obs Observer, journalTimeout time.Duration) *FrontDesk {
	return &FrontDesk{engine: e, rooms: rooms, journal: j, obs: obs, timeout: journalTimeout}
}

func (s *FrontDesk) Reserve(ctx context.Context, clientID string, roomNumber int, checkIn, checkOut time.Time) (domain.Reservation, error) {
	r, err := s.engine.Create(clientID, roomNumber, checkIn, checkOut)
	return r, s.after(ctx, "create", domain.EventReservationCreated, r, err)
}

func (s *FrontDesk) Cancel(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := s.engine.Cancel(id)
	return r, s.after(ctx, "cancel", domain.EventReservationCancelled, r, err)
}

func (s *FrontDesk) CheckIn(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := s.engine.CheckIn(id)
	return r, s.after(ctx, "check_in", domain.EventGuestCheckedIn, r, err)
}

func (s *FrontDesk) CheckOut(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := s.engine.CheckOut(id)
	return r, s.after(ctx, "check_out", domain.EventGuestCheckedOut, r, err)
}

// Reservation and All are read paths straight through to the engine.
func (s *FrontDesk) Reservation(id string) (domain.Reservation, bool) { return s.engine.ByID(id) }
func (s *FrontDesk) All() []domain.Reservation                       { return s.engine.All() }
func (s *FrontDesk) ByRoom(number int) []domain.Reservation          { return s.engine.ByRoom(number) }

// after records the outcome and passes err through untouched.
func (s *FrontDesk) after(ctx context.Context, op string, kind domain.EventKind, r domain.Reservation, err error) error {
	if s.obs != nil {
		s.obs.ObserveOp(op, domain.KindOf(err))
	}
	if err != nil {
		return err
	}
	if s.obs != nil {
		s.obs.SetRooms(s.rooms.Counts())
	}
	if s.journal == nil {
		return nil
	}

	jctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		jctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if jerr := s.journal.Record(jctx, domain.NewEvent(kind, r, s.engine.Now().UTC())); jerr != nil {
		log.Warn().Err(jerr).
			Str("event", string(kind)).
			Str("reservation", r.ID).
			Msg("journal write failed")
	}
	return nil
}
