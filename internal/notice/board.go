// Package notice holds the transient banners shown after user actions and
// failed refreshes. Every notice disappears on its own after the board's TTL.
package notice

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is the severity of a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

func (l Level) String() string { return string(l) }

// Notice is one banner.
type Notice struct {
	ID       string
	Level    Level
	Text     string
	PostedAt time.Time
}

type recorder interface {
	ObserveNotice(level string)
}

// Board keeps the active notices and notifies subscribers on every change.
type Board struct {
	ttl     time.Duration
	metrics recorder
	log     *slog.Logger

	mu     sync.Mutex
	items  []Notice
	timers map[string]*time.Timer
	subs   map[int]func([]Notice)
	nextID int
	closed bool
}

// NewBoard creates a Board whose notices expire after ttl. metrics may be nil.
func NewBoard(ttl time.Duration, metrics recorder, logger *slog.Logger) *Board {
	return &Board{
		ttl:     ttl,
		metrics: metrics,
		log:     logger.With("component", "notice"),
		timers:  make(map[string]*time.Timer),
		subs:    make(map[int]func([]Notice)),
	}
}

// Post adds a notice and schedules its removal.
func (b *Board) Post(level Level, text string) Notice {
	n := Notice{
		ID:       uuid.New().String(),
		Level:    level,
		Text:     text,
		PostedAt: time.Now(),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return n
	}
	b.items = append(b.items, n)
	b.timers[n.ID] = time.AfterFunc(b.ttl, func() { b.Dismiss(n.ID) })
	snapshot, subs := b.snapshotLocked()
	b.mu.Unlock()

	if b.metrics != nil {
		b.metrics.ObserveNotice(level.String())
	}
	b.log.Debug("notice posted", slog.String("level", level.String()), slog.String("text", text))
	notify(subs, snapshot)
	return n
}

// Success posts a success notice.
func (b *Board) Success(text string) Notice { return b.Post(LevelSuccess, text) }

// Info posts an informational notice.
func (b *Board) Info(text string) Notice { return b.Post(LevelInfo, text) }

// Error posts the user-facing description of err. Cancellation is not a
// failure the user needs to see, so it posts nothing and returns false.
func (b *Board) Error(err error) (Notice, bool) {
	if err == nil || errors.Is(err, context.Canceled) {
		return Notice{}, false
	}
	return b.Post(LevelError, Describe(err)), true
}

// Dismiss removes a notice early. It reports whether the notice was active.
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	idx := -1
	for i, n := range b.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return false
	}
	b.items = append(b.items[:idx:idx], b.items[idx+1:]...)
	if t, ok := b.timers[id]; ok {
		t.Stop()
		delete(b.timers, id)
	}
	snapshot, subs := b.snapshotLocked()
	b.mu.Unlock()

	notify(subs, snapshot)
	return true
}

// Active returns the notices currently shown, oldest first.
func (b *Board) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Notice(nil), b.items...)
}

// Subscribe registers fn to receive the active notices after every change.
// The returned function unregisters it.
func (b *Board) Subscribe(fn func([]Notice)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Close stops all pending timers and drops every notice.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
	b.items = nil
	b.closed = true
}

func (b *Board) snapshotLocked() ([]Notice, []func([]Notice)) {
	snapshot := append([]Notice(nil), b.items...)
	subs := make([]func([]Notice), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	return snapshot, subs
}

func notify(subs []func([]Notice), snapshot []Notice) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
