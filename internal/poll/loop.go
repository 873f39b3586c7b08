// Package poll runs a fetch function immediately and then on a fixed
// interval until stopped. Fetches never overlap: ticks arriving while a fetch
// is running coalesce into at most one follow-up.
package poll

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrAlreadyStarted is returned by a second Start on the same Loop.
var ErrAlreadyStarted = errors.New("poll: loop already started")

// FetchFunc performs one refresh. It owns its own error reporting; the
// returned error is only logged by the loop.
type FetchFunc func(ctx context.Context) error

// Ticker is the subset of *time.Ticker the loop needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// Option configures a Loop.
type Option func(*Loop)

// WithTicker replaces the wall-clock ticker, e.g. with a manual one in tests.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(l *Loop) { l.newTicker = newTicker }
}

// WithNudges triggers an extra fetch for every value received on ch.
func WithNudges(ch <-chan struct{}) Option {
	return func(l *Loop) { l.nudges = ch }
}

// WithNudgeSource subscribes to nudges when the loop starts and
// unsubscribes when it exits.
func WithNudgeSource(subscribe func() (<-chan struct{}, func())) Option {
	return func(l *Loop) { l.subscribe = subscribe }
}

// WithName labels the loop's log lines.
func WithName(name string) Option {
	return func(l *Loop) { l.name = name }
}

// Loop is a start-once, stop-once periodic fetcher.
type Loop struct {
	interval  time.Duration
	fetch     FetchFunc
	newTicker func(time.Duration) Ticker
	nudges    <-chan struct{}
	subscribe func() (<-chan struct{}, func())
	name      string
	log       *slog.Logger

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a Loop. interval must be positive.
func New(interval time.Duration, fetch FetchFunc, logger *slog.Logger, opts ...Option) *Loop {
	l := &Loop{
		interval: interval,
		fetch:    fetch,
		newTicker: func(d time.Duration) Ticker {
			return timeTicker{t: time.NewTicker(d)}
		},
		name: "poll",
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = logger.With("loop", l.name)
	return l
}

// Start issues the first fetch immediately on a new goroutine and keeps
// fetching every interval until Stop or until ctx is cancelled.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return ErrAlreadyStarted
	}
	l.started = true

	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})

	unsubscribe := func() {}
	if l.subscribe != nil {
		l.nudges, unsubscribe = l.subscribe()
	}

	go l.run(ctx, unsubscribe)

	l.log.DebugContext(ctx, "poll loop started", slog.Duration("interval", l.interval))
	return nil
}

// Stop cancels the loop and waits for its goroutine to exit, so no fetch
// starts after Stop returns. Stop is idempotent and safe before Start.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel = nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	l.log.Debug("poll loop stopped")
}

// Cancel stops the loop without waiting for an in-flight fetch to return.
// No fetch starts after Cancel returns. Unlike Stop it may be called from
// inside the fetch function or anything it calls.
func (l *Loop) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (l *Loop) run(ctx context.Context, unsubscribe func()) {
	defer close(l.done)
	defer unsubscribe()

	ticker := l.newTicker(l.interval)
	defer ticker.Stop()

	l.tick(ctx, "initial")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			l.tick(ctx, "interval")
		case <-l.nudges:
			l.tick(ctx, "nudge")
		}
	}
}

func (l *Loop) tick(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	if err := l.fetch(ctx); err != nil && ctx.Err() == nil {
		l.log.DebugContext(ctx, "poll fetch failed",
			slog.String("reason", reason),
			slog.String("error", err.Error()),
		)
	}
}
