package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"hotel_desk/internal/app"
	"hotel_desk/internal/cli"
	"hotel_desk/internal/domain"
)

type recordingJournal struct{ kinds []domain.EventKind }

func (j *recordingJournal) Record(_ context.Context, e domain.Event) error {
	j.kinds = append(j.kinds, e.Kind)
	return nil
}

type recordingObserver struct{ ops []string }

func (o *recordingObserver) ObserveOp(op, result string) { o.ops = append(o.ops, op+":"+result) }
func (o *recordingObserver) SetRooms(map[domain.RoomStatus]int) {}

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

type desk struct {
	rooms   *app.RoomDirectory
	clients *app.ClientDirectory
	front   *app.FrontDesk
	journal *recordingJournal
	obs     *recordingObserver
}

// newDesk fixes today at 10/03/2030 and seeds Ana (c-1) and Bob (c-2).
func newDesk(t *testing.T) *desk {
	t.Helper()
	now := func() time.Time { return time.Date(2030, time.March, 10, 9, 0, 0, 0, time.UTC) }
	rooms := app.NewRoomDirectory()
	rooms.Initialize()
	clients := app.NewClientDirectory(app.WithClock(now), app.WithIDs(sequence("c")))
	for _, n := range []string{"Ana", "Bob"} {
		if _, err := clients.Create(n); err != nil {
			t.Fatalf("seed client: %v", err)
		}
	}
	engine := app.NewReservationEngine(rooms, clients, app.WithClock(now), app.WithIDs(sequence("r")))
	j := &recordingJournal{}
	obs := &recordingObserver{}
	front := app.NewFrontDesk(engine, rooms, j, obs, time.Second)
	return &desk{rooms: rooms, clients: clients, front: front, journal: j, obs: obs}
}

func (d *desk) run(t *testing.T, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	if err := cli.New(in, &out, d.rooms, d.clients, d.front).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func mustContain(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func TestMenu_ReserveAndInspectRoom(t *testing.T) {
	d := newDesk(t)
	out := d.run(t,
		"3", "2", "c-1", "101", "10/03/2030", "13/03/2030", "7",
		"1", "2", "101", "6",
		"4",
	)

	mustContain(t, out,
		"Reservation created:",
		"Reservation r-1",
		"Client:    Ana (c-1)",
		"Check-out: 13/03/2030 (3 nights)",
		"Total:     150 EUR",
		"Goodbye.",
	)
	r, _ := d.rooms.ByNumber(101)
	if r.Status != domain.RoomReserved {
		t.Fatalf("room 101 status = %s", r.Status)
	}
	if len(d.journal.kinds) != 1 || d.journal.kinds[0] != domain.EventReservationCreated {
		t.Fatalf("journal = %v", d.journal.kinds)
	}
}

func TestMenu_BadInputIsRetriedAndErrorsAreRendered(t *testing.T) {
	d := newDesk(t)
	out := d.run(t,
		"x", "9",
		"3", "3", "nope",
		"2", "c-1", "101", "2030-03-12", "12/03/2030", "11/03/2030",
	)

	mustContain(t, out,
		"Please enter a valid number.",
		"Invalid option, try again.",
		"Could not cancel reservation (not found)",
		"Wrong date format, use dd/mm/yyyy.",
		"Could not create reservation (invalid input): check-out must be after check-in",
	)
	if got := d.front.All(); len(got) != 0 {
		t.Fatalf("no reservation should exist, got %d", len(got))
	}
}

func TestMenu_Clients(t *testing.T) {
	d := newDesk(t)
	out := d.run(t,
		"2",
		"2", "   ",
		"2", "  Carla  ",
		"4", "carla",
		"3", "missing",
		"5", "c-1",
		"7",
		"8", "4",
	)

	mustContain(t, out,
		"Could not register client (invalid input)",
		"Client registered. ID: c-3",
		"Client c-3 | Carla | reservations: 0",
		"Client not found.",
		"No active reservations for this client.",
		"CLIENT SUMMARY",
		"No active reservations.",
	)
}

func TestMenu_CheckInAndOut(t *testing.T) {
	d := newDesk(t)
	if _, err := d.front.Reserve(context.Background(), "c-2", 204,
		domain.Date(2030, time.March, 10), domain.Date(2030, time.March, 12)); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	out := d.run(t,
		"3", "5", "r-1", "6", "r-1", "6", "r-1", "3", "r-1", "7",
		"1", "5", "6",
		"4",
	)

	mustContain(t, out,
		"Check-in done.",
		"Check-out done.",
		"Could not check out (not allowed now)",
		"Reservation cancelled.",
		"Floor 3:",
		"- available: 15",
	)
	want := []domain.EventKind{
		domain.EventReservationCreated,
		domain.EventGuestCheckedIn,
		domain.EventGuestCheckedOut,
		domain.EventReservationCancelled,
	}
	if fmt.Sprint(d.journal.kinds) != fmt.Sprint(want) {
		t.Fatalf("journal = %v, want %v", d.journal.kinds, want)
	}
}

func TestMenu_StopsWhenContextDone(t *testing.T) {
	d := newDesk(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := cli.New(strings.NewReader("1\n"), &out, d.rooms, d.clients, d.front).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "ROOMS") {
		t.Fatalf("menu should not run with a cancelled context:\n%s", out.String())
	}
}

func TestMenu_ClientRefusalsComeFromTheDesk(t *testing.T) {
	d := newDesk(t)
	ctx := context.Background()
	for _, n := range []int{101, 102, 103} {
		if _, err := d.front.Reserve(ctx, "c-1", n,
			domain.Date(2030, time.March, 11), domain.Date(2030, time.March, 12)); err != nil {
			t.Fatalf("reserve %d: %v", n, err)
		}
	}

	out := d.run(t,
		"3",
		"2", "c-1", "104", "11/03/2030", "12/03/2030",
		"2", "ghost", "104", "11/03/2030", "12/03/2030",
		"7", "4",
	)

	mustContain(t, out,
		"Could not create reservation (unavailable): client already holds 3 active reservations",
		"Could not create reservation (not found): client: not found",
	)
	want := []string{"create:ok", "create:ok", "create:ok", "create:unavailable", "create:not_found"}
	if fmt.Sprint(d.obs.ops) != fmt.Sprint(want) {
		t.Fatalf("observed ops = %v, want %v", d.obs.ops, want)
	}
}
