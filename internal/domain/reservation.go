package domain

import "time"

// MaxStayDays caps the span between check-in and check-out.
const MaxStayDays = 90

// MaxActiveReservations is how many active reservations one client may hold.
const MaxActiveReservations = 3

type Reservation struct {
	ID         string
	RoomNumber int
	ClientID   string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice int
	Cancelled  bool
}

// Nights is the whole number of days between check-in and check-out.
func (r Reservation) Nights() int { return DaysBetween(r.CheckIn, r.CheckOut) }

// Overlaps reports whether [start, end] touches this reservation's span.
// Both boundaries are inclusive, so a stay ending on the day another starts counts as overlap.
// A cancelled reservation never overlaps.
func (r Reservation) Overlaps(start, end time.Time) bool {
	if r.Cancelled {
		return false
	}
	return !start.After(r.CheckOut) && !end.Before(r.CheckIn)
}

// Active: not cancelled and checking out strictly after today.
func (r Reservation) Active(today time.Time) bool {
	return !r.Cancelled && r.CheckOut.After(today)
}

// Past: cancelled, or checked out strictly before today.
// A reservation checking out today is neither Active nor Past.
func (r Reservation) Past(today time.Time) bool {
	return r.Cancelled || r.CheckOut.Before(today)
}

/********** calendar days **********/

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
