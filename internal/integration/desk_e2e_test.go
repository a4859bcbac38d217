package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	server "hotel_desk/internal/adapters/http_server"
	"hotel_desk/internal/adapters/observability"
	redisad "hotel_desk/internal/adapters/redis"
	"hotel_desk/internal/app"
	"hotel_desk/internal/cli"
	"hotel_desk/internal/domain"
)

// A menu session against the full stack: redis journal on miniredis and the
// ops server scraping the same collectors the front desk feeds.
func TestFrontDesk_EndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	rj := redisad.New(mr.Addr(), "", 0, "hotel:journal", 100)
	t.Cleanup(func() { _ = rj.Close() })

	now := func() time.Time { return time.Date(2030, time.June, 1, 8, 0, 0, 0, time.UTC) }
	n := 0
	ids := func() string {
		n++
		return []string{"", "c-1", "r-1", "r-2"}[n]
	}
	rooms := app.NewRoomDirectory()
	rooms.Initialize()
	clients := app.NewClientDirectory(app.WithClock(now), app.WithIDs(ids))
	engine := app.NewReservationEngine(rooms, clients, app.WithClock(now), app.WithIDs(ids))
	obs := observability.Desk{}
	obs.SetRooms(rooms.Counts())
	desk := app.NewFrontDesk(engine, rooms, app.MultiJournal{rj}, obs, time.Second)

	ops := server.New(zerolog.Nop())
	ops.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	ts := httptest.NewServer(ops.Mux())
	t.Cleanup(ts.Close)

	script := strings.Join([]string{
		"2", "2", "Lucía Gómez", "8",
		"3", "2", "c-1", "305", "01/06/2030", "04/06/2030",
		"2", "c-1", "305", "02/06/2030", "03/06/2030",
		"5", "r-1",
		"7", "4",
	}, "\n") + "\n"
	var out bytes.Buffer
	if err := cli.New(strings.NewReader(script), &out, rooms, clients, desk).Run(context.Background()); err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out.String(), "Total:     450 EUR") {
		t.Fatalf("suite for 3 nights should cost 450:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Could not create reservation (unavailable)") {
		t.Fatalf("second booking of 305 should be rejected:\n%s", out.String())
	}

	// journal: created + checked in, in order
	items, err := mr.List("hotel:journal")
	if err != nil {
		t.Fatalf("journal list: %v", err)
	}
	var kinds []domain.EventKind
	for _, it := range items {
		var ev domain.Event
		if err := json.Unmarshal([]byte(it), &ev); err != nil {
			t.Fatalf("decode journal entry: %v", err)
		}
		kinds = append(kinds, ev.Kind)
	}
	if len(kinds) != 2 || kinds[0] != domain.EventReservationCreated || kinds[1] != domain.EventGuestCheckedIn {
		t.Fatalf("journal kinds = %v", kinds)
	}

	// metrics
	res, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	for _, want := range []string{
		`hotel_reservation_ops_total{op="create",result="ok"} 1`,
		`hotel_reservation_ops_total{op="create",result="unavailable"} 1`,
		`hotel_reservation_ops_total{op="check_in",result="ok"} 1`,
		`hotel_rooms{status="occupied"} 1`,
		`hotel_journal_writes_total{result="ok",sink="redis"} 2`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}
