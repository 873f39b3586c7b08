// Package dataloader batches and deduplicates the user and event lookups
// needed to denormalize a page of notifications or participants. A Loaders
// set is created per refresh cycle so results never outlive one cycle.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// DefaultConcurrency bounds the parallel requests issued for one batch.
const DefaultConcurrency = 4

type lookup interface {
	GetUser(ctx context.Context, id domain.ID) (*domain.UserProfile, error)
	GetEvent(ctx context.Context, id domain.ID) (*domain.Event, error)
}

// Loaders contains the per-cycle DataLoaders.
type Loaders struct {
	UserByID  *dataloader.Loader[domain.ID, *domain.UserProfile]
	EventByID *dataloader.Loader[domain.ID, *domain.Event]
}

// NewLoaders creates a new set of DataLoaders backed by the given lookups.
// concurrency <= 0 falls back to DefaultConcurrency.
func NewLoaders(l lookup, concurrency int) *Loaders {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Loaders{
		UserByID:  newLoader(newUsersBatchFn(l, concurrency)),
		EventByID: newLoader(newEventsBatchFn(l, concurrency)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[domain.ID, V]) *dataloader.Loader[domain.ID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[domain.ID, V](wait),
		dataloader.WithBatchCapacity[domain.ID, V](maxBatch),
	)
}

// Prefetch queues loads for every id without waiting, so the name lookups
// that follow are served from one batch.
func (l *Loaders) Prefetch(ctx context.Context, userIDs, eventIDs []domain.ID) {
	for _, id := range userIDs {
		if !id.IsZero() {
			l.UserByID.Load(ctx, id)
		}
	}
	for _, id := range eventIDs {
		if !id.IsZero() {
			l.EventByID.Load(ctx, id)
		}
	}
}

// UserName resolves a display name, falling back to domain.UnknownUser on
// any failure or blank profile.
func (l *Loaders) UserName(ctx context.Context, id domain.ID) string {
	if id.IsZero() {
		return domain.UnknownUser
	}
	u, err := l.UserByID.Load(ctx, id)()
	if err != nil || u == nil {
		return domain.UnknownUser
	}
	if name := u.DisplayName(); name != "" {
		return name
	}
	return domain.UnknownUser
}

// EventName resolves an event name, falling back to domain.UnknownGame.
func (l *Loaders) EventName(ctx context.Context, id domain.ID) string {
	if id.IsZero() {
		return domain.UnknownGame
	}
	e, err := l.EventByID.Load(ctx, id)()
	if err != nil || e == nil || e.Name == "" {
		return domain.UnknownGame
	}
	return e.Name
}
