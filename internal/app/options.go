package app

import (
	"time"

	"github.com/google/uuid"

	"hotel_desk/internal/domain"
)

type options struct {
	clock domain.Clock
	newID func() string
}

type Option func(*options)

// WithClock overrides time.Now as the source of "today".
func WithClock(c domain.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithIDs overrides the id generator (random UUIDs by default).
func WithIDs(f func() string) Option {
	return func(o *options) { o.newID = f }
}

func buildOptions(opts []Option) options {
	o := options{clock: time.Now, newID: uuid.NewString}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) today() time.Time { return domain.Day(o.clock()) }
