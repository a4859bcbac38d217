package app

import (
	"fmt"
	"sync"

	"hotel_desk/internal/domain"
)

// three floors, five rooms each
var seedRooms = []domain.Room{
	{Number: 101, Type: domain.RoomIndividual, Description: "Garden view"},
	{Number: 102, Type: domain.RoomIndividual, Description: "Extra large bed"},
	{Number: 103, Type: domain.RoomDouble, Description: "Two single beds"},
	{Number: 104, Type: domain.RoomDouble, Description: "Double bed"},
	{Number: 105, Type: domain.RoomSuite, Description: "Jacuzzi"},

	{Number: 201, Type: domain.RoomIndividual, Description: "City view"},
	{Number: 202, Type: domain.RoomDouble, Description: "Private balcony"},
	{Number: 203, Type: domain.RoomDouble, Description: "King size bed"},
	{Number: 204, Type: domain.RoomSuite, Description: "Separate living room"},
	{Number: 205, Type: domain.RoomSuite, Description: "Panoramic view"},

	{Number: 301, Type: domain.RoomIndividual, Description: "Small terrace"},
	{Number: 302, Type: domain.RoomDouble, Description: "Sea view"},
	{Number: 303, Type: domain.RoomDouble, Description: "Modern decor"},
	{Number: 304, Type: domain.RoomSuite, Description: "Two bedrooms"},
	{Number: 305, Type: domain.RoomSuite, Description: "Presidential suite"},
}

type RoomDirectory struct {
	mu    sync.RWMutex
	rooms []*domain.Room
}

func NewRoomDirectory() *RoomDirectory { return &RoomDirectory{} }

// Initialize seeds the fixed room set, all Available. Calling it again is a no-op.
func (d *RoomDirectory) Initialize() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.rooms) > 0 {
		return
	}
	d.rooms = make([]*domain.Room, 0, len(seedRooms))
	for _, r := range seedRooms {
		r := r
		r.Status = domain.RoomAvailable
		d.rooms = append(d.rooms, &r)
	}
}

func (d *RoomDirectory) All() []domain.Room {
	return d.filter(func(domain.Room) bool { return true })
}

func (d *RoomDirectory) ByNumber(n int) (domain.Room, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if r := d.find(n); r != nil {
		return *r, true
	}
	return domain.Room{}, false
}

func (d *RoomDirectory) ByType(t domain.RoomType) []domain.Room {
	return d.filter(func(r domain.Room) bool { return r.Type == t })
}

func (d *RoomDirectory) ByStatus(s domain.RoomStatus) []domain.Room {
	return d.filter(func(r domain.Room) bool { return r.Status == s })
}

// SetStatus overwrites the room's status. Whether the transition is legal is the engine's call.
func (d *RoomDirectory) SetStatus(n int, s domain.RoomStatus) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.find(n)
	if r == nil {
		return fmt.Errorf("set status of %d: %w", n, domain.ErrRoomNotFound)
	}
	r.Status = s
	return nil
}

// Counts returns how many rooms are in each status; every status is present.
func (d *RoomDirectory) Counts() map[domain.RoomStatus]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[domain.RoomStatus]int, len(domain.RoomStatuses))
	for _, s := range domain.RoomStatuses {
		out[s] = 0
	}
	for _, r := range d.rooms {
		out[r.Status]++
	}
	return out
}

// Floors groups a snapshot of the rooms by floor, in insertion order.
func (d *RoomDirectory) Floors() [][]domain.Room {
	var out [][]domain.Room
	idx := map[int]int{}
	for _, r := range d.All() {
		i, ok := idx[r.Floor()]
		if !ok {
			i = len(out)
			idx[r.Floor()] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], r)
	}
	return out
}

func (d *RoomDirectory) filter(keep func(domain.Room) bool) []domain.Room {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Room, 0, len(d.rooms))
	for _, r := range d.rooms {
		if keep(*r) {
			out = append(out, *r)
		}
	}
	return out
}

func (d *RoomDirectory) find(n int) *domain.Room {
	for _, r := range d.rooms {
		if r.Number == n {
			return r
		}
	}
	return nil
}
