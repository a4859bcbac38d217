package app_test

import (
	"testing"
	"time"

	"hotel_desk/internal/app"
	"hotel_desk/internal/domain"
)

// ---- fakes ----

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(days int) { c.now = c.now.AddDate(0, 0, days) }

// ---- fixture ----

type fixture struct {
	clock   *fakeClock
	rooms   *app.RoomDirectory
	clients *app.ClientDirectory
	engine  *app.ReservationEngine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &fakeClock{now: time.Date(2030, time.March, 10, 14, 30, 0, 0, time.UTC)}
	rooms := app.NewRoomDirectory()
	rooms.Initialize()
	clients := app.NewClientDirectory(app.WithClock(clock.Now))
	engine := app.NewReservationEngine(rooms, clients, app.WithClock(clock.Now))
	return &fixture{clock: clock, rooms: rooms, clients: clients, engine: engine}
}

// day returns today shifted by n calendar days.
func (f *fixture) day(n int) time.Time { return domain.Day(f.clock.now).AddDate(0, 0, n) }

func (f *fixture) client(t *testing.T, name string) domain.Client {
	t.Helper()
	c, err := f.clients.Create(name)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func (f *fixture) book(t *testing.T, clientID string, room, from, to int) domain.Reservation {
	t.Helper()
	r, err := f.engine.Create(clientID, room, f.day(from), f.day(to))
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return r
}

func (f *fixture) roomStatus(t *testing.T, n int) domain.RoomStatus {
	t.Helper()
	r, ok := f.rooms.ByNumber(n)
	if !ok {
		t.Fatalf("room %d missing", n)
	}
	return r.Status
}
