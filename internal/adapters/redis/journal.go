package redisad

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/domain"
)

// Journal keeps the most recent lifecycle events in a capped list and
// publishes each one on a channel named after the list key.
type Journal struct {
	c   *redis.Client
	key string
	max int64
}

func New(addr, pass string, db int, key string, keep int) *Journal {
	if keep <= 0 {
		keep = 1000
	}
	return &Journal{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		key: key,
		max: int64(keep),
	}
}

func (j *Journal) Record(ctx context.Context, ev domain.Event) (err error) {
	defer func() { observability.ObserveJournal("redis", err) }()

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	pipe := j.c.TxPipeline()
	pipe.RPush(ctx, j.key, b)
	pipe.LTrim(ctx, j.key, -j.max, -1)
	pipe.Publish(ctx, j.key, b)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis journal %s: %w", j.key, err)
	}
	return nil
}

func (j *Journal) Ping(ctx context.Context) error { return j.c.Ping(ctx).Err() }

func (j *Journal) Close() error { return j.c.Close() }
