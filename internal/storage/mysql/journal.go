package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/domain"
)

// Journal appends lifecycle events to the reservation_events audit table.
type Journal struct{ db *sql.DB }

func New(db *sql.DB) *Journal { return &Journal{db: db} }

// Open connects with the mysql driver and checks the connection.
// The DSN must carry parseTime=true for ListEvents to scan dates.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

func (j *Journal) Record(ctx context.Context, ev domain.Event) (err error) {
	defer func() { observability.ObserveJournal("mysql", err) }()

	_, err = j.db.ExecContext(ctx, insertEventSQL,
		string(ev.Kind),
		ev.ReservationID,
		ev.ClientID,
		ev.RoomNumber,
		ev.CheckIn.UTC(),
		ev.CheckOut.UTC(),
		ev.TotalPrice,
		ev.OccurredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert reservation event: %w", err)
	}
	return nil
}

// ListEvents returns the audit trail of one reservation. The process itself
// never calls this; it serves operators and tests.
func (j *Journal) ListEvents(ctx context.Context, reservationID string) ([]domain.Event, error) {
	rows, err := j.db.QueryContext(ctx, listEventsSQL, reservationID)
	if err != nil {
		return nil, fmt.Errorf("query reservation events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var ev domain.Event
		var kind string
		if err := rows.Scan(
			&kind,
			&ev.ReservationID,
			&ev.ClientID,
			&ev.RoomNumber,
			&ev.CheckIn,
			&ev.CheckOut,
			&ev.TotalPrice,
			&ev.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation event: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
