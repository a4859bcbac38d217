package domain

import (
	"context"
	"time"
)

// Journal records lifecycle events somewhere outside the process.
// Nothing reads a journal back into the running state.
type Journal interface {
	Record(ctx context.Context, e Event) error
}

// Clock supplies "now"; the engine reduces it to a calendar day.
type Clock func() time.Time
