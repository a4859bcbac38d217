package domain

type Client struct {
	ID       string
	FullName string
	// ReservationIDs is append-only, in booking order. The engine owns the reservations.
	ReservationIDs []string
}
