package redisad_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_desk/internal/adapters/redis"
	"hotel_desk/internal/domain"
)

func event(kind domain.EventKind, id string) domain.Event {
	r := domain.Reservation{
		ID:         id,
		RoomNumber: 101,
		ClientID:   "c-1",
		CheckIn:    domain.Date(2030, time.March, 10),
		CheckOut:   domain.Date(2030, time.March, 13),
		TotalPrice: 150,
	}
	return domain.NewEvent(kind, r, time.Date(2030, time.March, 9, 12, 0, 0, 0, time.UTC))
}

func TestJournal_RecordAppendsJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	j := redisad.New(mr.Addr(), "", 0, "hotel:journal", 10)
	defer j.Close()

	ctx := context.Background()
	if err := j.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := j.Record(ctx, event(domain.EventReservationCreated, "r-1")); err != nil {
		t.Fatalf("record: %v", err)
	}

	items, err := mr.List("hotel:journal")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 entry, got %d", len(items))
	}
	var got domain.Event
	if err := json.Unmarshal([]byte(items[0]), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind != domain.EventReservationCreated || got.ReservationID != "r-1" || got.TotalPrice != 150 {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestJournal_KeepsOnlyNewest(t *testing.T) {
	mr := miniredis.RunT(t)
	j := redisad.New(mr.Addr(), "", 0, "hotel:journal", 2)
	defer j.Close()

	ctx := context.Background()
	for _, id := range []string{"r-1", "r-2", "r-3"} {
		if err := j.Record(ctx, event(domain.EventReservationCreated, id)); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	items, _ := mr.List("hotel:journal")
	if len(items) != 2 {
		t.Fatalf("want list capped at 2, got %d", len(items))
	}
	var first domain.Event
	_ = json.Unmarshal([]byte(items[0]), &first)
	if first.ReservationID != "r-2" {
		t.Fatalf("oldest kept entry = %s, want r-2", first.ReservationID)
	}
}

func TestJournal_RecordFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	j := redisad.New(mr.Addr(), "", 0, "hotel:journal", 10)
	defer j.Close()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := j.Record(ctx, event(domain.EventGuestCheckedIn, "r-1")); err == nil {
		t.Fatalf("expected error with redis down")
	}
}
