package app

import (
	"strings"
	"sync"
	"time"

	"hotel_desk/internal/domain"
)

type clientEntry struct {
	client domain.Client
	// shared with the engine's master list; never mutated from here
	reservations []*domain.Reservation
}

type ClientDirectory struct {
	mu      sync.RWMutex
	opts    options
	clients []*clientEntry
}

func NewClientDirectory(opts ...Option) *ClientDirectory {
	return &ClientDirectory{opts: buildOptions(opts)}
}

// Create registers a client under a fresh id. The name is stored trimmed.
func (d *ClientDirectory) Create(fullName string) (domain.Client, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return domain.Client{}, domain.ErrEmptyName
	}
	e := &clientEntry{client: domain.Client{ID: d.opts.newID(), FullName: name}}

	d.mu.Lock()
	d.clients = append(d.clients, e)
	d.mu.Unlock()
	return snapshotClient(e), nil
}

func (d *ClientDirectory) All() []domain.Client {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Client, 0, len(d.clients))
	for _, e := range d.clients {
		out = append(out, snapshotClient(e))
	}
	return out
}

func (d *ClientDirectory) ByID(id string) (domain.Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if e := d.find(id); e != nil {
		return snapshotClient(e), true
	}
	return domain.Client{}, false
}

// ByName is a case-insensitive exact match; the first registered client wins.
func (d *ClientDirectory) ByName(name string) (domain.Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, e := range d.clients {
		if strings.EqualFold(e.client.FullName, name) {
			return snapshotClient(e), true
		}
	}
	return domain.Client{}, false
}

// ActiveReservations: not cancelled, checking out after today. Empty for an unknown client.
func (d *ClientDirectory) ActiveReservations(clientID string) []domain.Reservation {
	today := d.opts.today()
	return d.reservations(clientID, func(r *domain.Reservation) bool { return r.Active(today) })
}

// ReservationHistory: cancelled, or checked out before today. Empty for an unknown client.
func (d *ClientDirectory) ReservationHistory(clientID string) []domain.Reservation {
	today := d.opts.today()
	return d.reservations(clientID, func(r *domain.Reservation) bool { return r.Past(today) })
}

// CanMakeReservation is false for an unknown client, not an error.
func (d *ClientDirectory) CanMakeReservation(clientID string) bool {
	n, ok := d.activeCount(clientID, d.opts.today())
	return ok && n < domain.MaxActiveReservations
}

// activeCount counts the client's active reservations as of today.
// ok is false for an unknown client.
func (d *ClientDirectory) activeCount(clientID string, today time.Time) (n int, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e := d.find(clientID)
	if e == nil {
		return 0, false
	}
	for _, r := range e.reservations {
		if r.Active(today) {
			n++
		}
	}
	return n, true
}

// attach appends r to the client's back-index. Only the engine calls it.
func (d *ClientDirectory) attach(clientID string, r *domain.Reservation) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	e := d.find(clientID)
	if e == nil {
		return false
	}
	e.client.ReservationIDs = append(e.client.ReservationIDs, r.ID)
	e.reservations = append(e.reservations, r)
	return true
}

func (d *ClientDirectory) reservations(clientID string, keep func(*domain.Reservation) bool) []domain.Reservation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e := d.find(clientID)
	if e == nil {
		return []domain.Reservation{}
	}
	out := make([]domain.Reservation, 0, len(e.reservations))
	for _, r := range e.reservations {
		if keep(r) {
			out = append(out, *r)
		}
	}
	return out
}

func (d *ClientDirectory) find(id string) *clientEntry {
	for _, e := range d.clients {
		if e.client.ID == id {
			return e
		}
	}
	return nil
}

// copy the id slice so callers cannot append into the directory's backing array
func snapshotClient(e *clientEntry) domain.Client {
	c := e.client
	c.ReservationIDs = append([]string(nil), e.client.ReservationIDs...)
	return c
}
