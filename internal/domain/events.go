package domain

import "time"

type EventKind string

const (
	EventReservationCreated   EventKind = "reservation_created"
	EventReservationCancelled EventKind = "reservation_cancelled"
	EventGuestCheckedIn       EventKind = "guest_checked_in"
	EventGuestCheckedOut      EventKind = "guest_checked_out"
)

// Event is one successful lifecycle transition, as recorded by a Journal.
type Event struct {
	Kind          EventKind `json:"kind"`
	ReservationID string    `json:"reservation_id"`
	ClientID      string    `json:"client_id"`
	RoomNumber    int       `json:"room_number"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalPrice    int       `json:"total_price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(kind EventKind, r Reservation, at time.Time) Event {
	return Event{
		Kind:          kind,
		ReservationID: r.ID,
		ClientID:      r.ClientID,
		RoomNumber:    r.RoomNumber,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		TotalPrice:    r.TotalPrice,
		OccurredAt:    at,
	}
}
