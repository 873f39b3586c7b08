package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID
// ---------------------------------------------------------------------------

func newUsersBatchFn(l lookup, concurrency int) dataloader.BatchFunc[domain.ID, *domain.UserProfile] {
	return func(ctx context.Context, keys []domain.ID) []*dataloader.Result[*domain.UserProfile] {
		return fanOut(ctx, keys, concurrency, l.GetUser)
	}
}

// ---------------------------------------------------------------------------
// Events by ID
// ---------------------------------------------------------------------------

func newEventsBatchFn(l lookup, concurrency int) dataloader.BatchFunc[domain.ID, *domain.Event] {
	return func(ctx context.Context, keys []domain.ID) []*dataloader.Result[*domain.Event] {
		return fanOut(ctx, keys, concurrency, l.GetEvent)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// fanOut issues one request per key, at most limit at a time. The backend has
// no batch endpoint, so each key keeps its own result and error; one failed
// lookup never fails its neighbours.
func fanOut[V any](ctx context.Context, keys []domain.ID, limit int, fetch func(context.Context, domain.ID) (V, error)) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			v, err := fetch(ctx, key)
			results[i] = &dataloader.Result[V]{Data: v, Error: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
