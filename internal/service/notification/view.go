package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/meetup-client/internal/dataloader"
	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/poll"
)

// DefaultPollInterval is used when Options.Interval is not positive.
const DefaultPollInterval = 5 * time.Second

// Options configures a View.
type Options struct {
	Interval time.Duration
	// LookupConcurrency bounds parallel name lookups per poll.
	LookupConcurrency int
	Poll              []poll.Option
}

// State is an immutable snapshot of a View.
type State struct {
	Inbox     Inbox
	Loading   bool
	PollError bool
}

// View is the notification list screen.
type View struct {
	api         notificationAPI
	lookup      lookup
	board       noticeBoard
	metrics     recorder
	interval    time.Duration
	concurrency int
	pollOpts    []poll.Option
	log         *slog.Logger

	mu         sync.Mutex
	inbox      Inbox
	read       map[domain.ID]struct{}
	loading    bool
	pollErr    bool
	generation uint64
	loop       *poll.Loop
	subs       map[int]func(State)
	nextSub    int
}

// NewView creates a View. metrics may be nil.
func NewView(
	log *slog.Logger,
	api notificationAPI,
	lookup lookup,
	board noticeBoard,
	metrics recorder,
	opts Options,
) *View {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	return &View{
		api:         api,
		lookup:      lookup,
		board:       board,
		metrics:     metrics,
		interval:    opts.Interval,
		concurrency: opts.LookupConcurrency,
		pollOpts:    opts.Poll,
		log:         log.With("view", viewName),
		read:        make(map[domain.ID]struct{}),
		subs:        make(map[int]func(State)),
	}
}

// Mount starts polling.
func (v *View) Mount(ctx context.Context) error {
	v.mu.Lock()
	if v.loop != nil {
		v.mu.Unlock()
		return ErrAlreadyMounted
	}
	v.generation++
	gen := v.generation
	v.inbox = Inbox{}
	v.read = make(map[domain.ID]struct{})
	v.loading = true
	v.pollErr = false

	opts := append([]poll.Option{poll.WithName(viewName)}, v.pollOpts...)
	loop := poll.New(v.interval, v.fetcher(gen), v.log, opts...)
	v.loop = loop
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
	if err := loop.Start(ctx); err != nil {
		return fmt.Errorf("notification: mount: %w", err)
	}
	return nil
}

// Unmount stops polling without waiting for an in-flight fetch, so
// subscribers may call it. Late results are discarded.
func (v *View) Unmount() {
	v.mu.Lock()
	loop := v.loop
	v.loop = nil
	v.generation++
	v.loading = false
	v.mu.Unlock()

	if loop != nil {
		loop.Cancel()
	}
}

func (v *View) fetcher(gen uint64) poll.FetchFunc {
	return func(ctx context.Context) error {
		ns, err := v.api.ListNotifications(ctx)
		if err == nil {
			Denormalize(ctx, dataloader.NewLoaders(v.lookup, v.concurrency), ns)
		}

		v.mu.Lock()
		if gen != v.generation {
			v.mu.Unlock()
			return nil
		}
		v.metrics.ObservePoll(viewName, err)
		v.loading = false
		if err != nil {
			v.pollErr = true
			state, subs := v.snapshotLocked()
			v.mu.Unlock()

			notify(subs, state)
			v.board.Error(err)
			return fmt.Errorf("notification: poll: %w", err)
		}

		// Read is monotonic: keep the flag for anything marked during this mount
		// even if the server has not caught up yet.
		for i := range ns {
			if _, ok := v.read[ns[i].ID]; ok {
				ns[i].Read = true
			}
		}
		v.pollErr = false
		v.inbox = Reconcile(ns)
		state, subs := v.snapshotLocked()
		v.mu.Unlock()

		notify(subs, state)
		return nil
	}
}

// Open marks notification id read and returns the event to navigate to.
// When marking fails no event id is returned, so the caller does not navigate.
// Already-read notifications open without a call.
func (v *View) Open(ctx context.Context, id domain.ID) (domain.ID, error) {
	v.mu.Lock()
	n, ok := v.inbox.Find(id)
	v.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("notification: open %s: %w", id, domain.ErrNotFound)
	}
	if n.Read {
		return n.EventID, nil
	}

	if err := v.markRead(ctx, []domain.ID{id}); err != nil {
		return "", err
	}

	v.log.InfoContext(ctx, "notification opened",
		slog.String("notification_id", id.String()),
		slog.String("event_id", n.EventID.String()),
	)
	return n.EventID, nil
}

// MarkAllRead marks every unread notification read with one call and returns
// how many were marked.
func (v *View) MarkAllRead(ctx context.Context) (int, error) {
	v.mu.Lock()
	var ids []domain.ID
	for _, list := range [][]domain.Notification{v.inbox.JoinRequests, v.inbox.Others} {
		for _, n := range list {
			if !n.Read {
				ids = append(ids, n.ID)
			}
		}
	}
	v.mu.Unlock()

	if len(ids) == 0 {
		return 0, nil
	}
	if err := v.markRead(ctx, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (v *View) markRead(ctx context.Context, ids []domain.ID) error {
	err := v.api.MarkNotificationsRead(ctx, ids)
	v.metrics.ObserveMutation(kindMarkRead, err)
	if err != nil {
		v.board.Error(err)
		return fmt.Errorf("notification: mark read: %w", err)
	}

	v.mu.Lock()
	marked := make(map[domain.ID]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
		v.read[id] = struct{}{}
	}
	for _, list := range [][]domain.Notification{v.inbox.JoinRequests, v.inbox.Others} {
		for i := range list {
			if _, ok := marked[list[i].ID]; ok {
				list[i].Read = true
			}
		}
	}
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
	return nil
}

// State returns the current snapshot.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	state, _ := v.snapshotLocked()
	return state
}

// Subscribe registers fn to receive a snapshot after every change.
// The returned function unregisters it.
func (v *View) Subscribe(fn func(State)) func() {
	v.mu.Lock()
	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}

func (v *View) snapshotLocked() (State, []func(State)) {
	state := State{
		Inbox:     v.inbox.clone(),
		Loading:   v.loading,
		PollError: v.pollErr,
	}
	subs := make([]func(State), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	return state, subs
}

func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
