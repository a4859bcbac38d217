package app

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"hotel_desk/internal/domain"
)

// MultiJournal writes each event to every sink concurrently and joins their errors.
// One failing sink does not stop the others.
type MultiJournal []domain.Journal

func (m MultiJournal) Record(ctx context.Context, e domain.Event) error {
	errs := make([]error, len(m))
	var g errgroup.Group
	for i, j := range m {
		i, j := i, j
		g.Go(func() error {
			errs[i] = j.Record(ctx, e)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
