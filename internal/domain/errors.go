package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the directories and the engine wraps exactly one of these.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
	ErrInvalidState    = errors.New("invalid state")
)

var (
	ErrEmptyName             = fmt.Errorf("full name must not be empty: %w", ErrInvalidArgument)
	ErrMissingDates          = fmt.Errorf("check-in and check-out dates are required: %w", ErrInvalidArgument)
	ErrCheckInPast           = fmt.Errorf("check-in date is in the past: %w", ErrInvalidArgument)
	ErrCheckOutBeforeCheckIn = fmt.Errorf("check-out must be after check-in: %w", ErrInvalidArgument)
	ErrStayTooLong           = fmt.Errorf("stay cannot exceed %d days: %w", MaxStayDays, ErrInvalidArgument)

	ErrClientNotFound      = fmt.Errorf("client: %w", ErrNotFound)
	ErrRoomNotFound        = fmt.Errorf("room: %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation: %w", ErrNotFound)

	ErrClientAtCapacity = fmt.Errorf("client already holds %d active reservations: %w", MaxActiveReservations, ErrUnavailable)
	ErrRoomNotAvailable = fmt.Errorf("room is not available: %w", ErrUnavailable)
	ErrDatesOverlap     = fmt.Errorf("room already booked for those dates: %w", ErrUnavailable)

	ErrAlreadyCancelled     = fmt.Errorf("reservation already cancelled: %w", ErrInvalidState)
	ErrAlreadyStarted       = fmt.Errorf("reservation has already started: %w", ErrInvalidState)
	ErrCancelledReservation = fmt.Errorf("reservation is cancelled: %w", ErrInvalidState)
	ErrTooEarlyToCheckIn    = fmt.Errorf("check-in date not reached: %w", ErrInvalidState)
	ErrTooLateToCheckIn     = fmt.Errorf("check-out date has passed: %w", ErrInvalidState)
	ErrNotCheckedIn         = fmt.Errorf("room is not occupied: %w", ErrInvalidState)
)

// KindOf labels err with its kind for metrics and display. Unknown errors are "internal".
func KindOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	default:
		return "internal"
	}
}
