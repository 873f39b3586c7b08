package participant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/poll"
)

// DefaultPollInterval is used when Options.Interval is not positive.
const DefaultPollInterval = 10 * time.Second

// ErrAlreadyMounted is returned by a second Mount without Unmount.
var ErrAlreadyMounted = errors.New("participant: view already mounted")

// Options configures a View.
type Options struct {
	Interval time.Duration
	Poll     []poll.Option
}

// State is an immutable snapshot of a View.
type State struct {
	EventID   domain.ID
	Pending   []domain.Participant
	Joined    []domain.Participant
	Loading   bool
	PollError bool
}

// View is an organizer's participant management screen for one event.
type View struct {
	svc      *Service
	api      participantAPI
	board    noticeBoard
	metrics  recorder
	interval time.Duration
	pollOpts []poll.Option
	log      *slog.Logger

	mu           sync.Mutex
	eventID      domain.ID
	participants []domain.Participant
	loading      bool
	pollErr      bool
	generation   uint64
	loop         *poll.Loop
	subs         map[int]func(State)
	nextSub      int
}

// NewView creates a View over svc. metrics may be nil.
func NewView(
	log *slog.Logger,
	svc *Service,
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
		svc:      svc,
		api:      svc.api,
		board:    board,
		metrics:  metrics,
		interval: opts.Interval,
		pollOpts: opts.Poll,
		log:      log.With("view", viewName),
		subs:     make(map[int]func(State)),
	}
}

// Mount starts polling the participants of eventID.
func (v *View) Mount(ctx context.Context, eventID domain.ID) error {
	if eventID.IsZero() {
		v.log.ErrorContext(ctx, "participants mounted without an event id")
		return domain.NewValidationError("post_games_id", "required")
	}

	v.mu.Lock()
	if v.loop != nil {
		v.mu.Unlock()
		return ErrAlreadyMounted
	}
	v.generation++
	gen := v.generation
	v.eventID = eventID
	v.participants = nil
	v.loading = true
	v.pollErr = false

	opts := append([]poll.Option{poll.WithName(viewName)}, v.pollOpts...)
	loop := poll.New(v.interval, v.fetcher(eventID, gen), v.log, opts...)
	v.loop = loop
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
	if err := loop.Start(ctx); err != nil {
		return fmt.Errorf("participant: mount: %w", err)
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

func (v *View) fetcher(eventID domain.ID, gen uint64) poll.FetchFunc {
	return func(ctx context.Context) error {
		ps, err := v.api.ListParticipants(ctx, eventID)

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
			return fmt.Errorf("participant: poll: %w", err)
		}
		v.pollErr = false
		v.participants = append(make([]domain.Participant, 0, len(ps)), ps...)
		state, subs := v.snapshotLocked()
		v.mu.Unlock()

		notify(subs, state)
		return nil
	}
}

// Approve approves participant id. On success it moves from pending to joined.
func (v *View) Approve(ctx context.Context, id domain.ID) error {
	p, gen, err := v.find(id)
	if err != nil {
		return err
	}
	updated, err := v.svc.Approve(ctx, p)
	if err != nil {
		v.board.Error(err)
		return err
	}
	v.apply(gen, []domain.Participant{updated}, nil)
	v.board.Success(fmt.Sprintf("%s approved.", displayName(p)))
	return nil
}

// Refuse refuses participant id. On success it leaves every list.
func (v *View) Refuse(ctx context.Context, id domain.ID) error {
	p, gen, err := v.find(id)
	if err != nil {
		return err
	}
	if err := v.svc.Refuse(ctx, p); err != nil {
		v.board.Error(err)
		return err
	}
	v.apply(gen, nil, []domain.ID{id})
	v.board.Success(fmt.Sprintf("%s refused.", displayName(p)))
	return nil
}

// Remove removes member id after confirmation. A declined confirmation
// returns ErrNotConfirmed and posts nothing.
func (v *View) Remove(ctx context.Context, id domain.ID) error {
	p, gen, err := v.find(id)
	if err != nil {
		return err
	}
	if err := v.svc.Remove(ctx, p); err != nil {
		if !errors.Is(err, ErrNotConfirmed) {
			v.board.Error(err)
		}
		return err
	}
	v.apply(gen, nil, []domain.ID{id})
	v.board.Success(fmt.Sprintf("%s removed.", displayName(p)))
	return nil
}

// ApproveAll approves every pending request.
func (v *View) ApproveAll(ctx context.Context) BulkResult {
	v.mu.Lock()
	pending := domain.PendingParticipants(v.participants)
	gen := v.generation
	v.mu.Unlock()

	res := v.svc.ApproveAll(ctx, pending)
	v.apply(gen, res.Succeeded, nil)
	v.report(res, "approved")
	return res
}

// RemoveAll removes every joined member after one confirmation.
func (v *View) RemoveAll(ctx context.Context) (BulkResult, error) {
	v.mu.Lock()
	joined := domain.JoinedParticipants(v.participants)
	gen := v.generation
	v.mu.Unlock()

	res, err := v.svc.RemoveAll(ctx, joined)
	if err != nil {
		if !errors.Is(err, ErrNotConfirmed) {
			v.board.Error(err)
		}
		return res, err
	}

	removed := make([]domain.ID, 0, len(res.Succeeded))
	for _, p := range res.Succeeded {
		removed = append(removed, p.ID)
	}
	v.apply(gen, nil, removed)
	v.report(res, "removed")
	return res, nil
}

func (v *View) report(res BulkResult, verb string) {
	switch res.Outcome() {
	case OutcomeSuccess:
		if res.Total() > 0 {
			v.board.Success(fmt.Sprintf("All %d participants %s.", res.Total(), verb))
		}
	case OutcomePartial:
		v.board.Success(fmt.Sprintf("%d of %d participants %s.", len(res.Succeeded), res.Total(), verb))
		v.board.Error(res.Err())
	case OutcomeFailure:
		v.board.Error(res.Err())
	}
}

func (v *View) find(id domain.ID) (domain.Participant, uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, p := range v.participants {
		if p.ID == id {
			return p, v.generation, nil
		}
	}
	return domain.Participant{}, 0, fmt.Errorf("participant: %s: %w", id, domain.ErrNotFound)
}

// apply patches the local list after successful mutations: updated entries
// are replaced by id and removed ids are dropped.
func (v *View) apply(gen uint64, updated []domain.Participant, removed []domain.ID) {
	v.mu.Lock()
	if gen != v.generation {
		v.mu.Unlock()
		return
	}
	byID := make(map[domain.ID]domain.Participant, len(updated))
	for _, p := range updated {
		byID[p.ID] = p
	}
	drop := make(map[domain.ID]struct{}, len(removed))
	for _, id := range removed {
		drop[id] = struct{}{}
	}

	kept := make([]domain.Participant, 0, len(v.participants))
	for _, p := range v.participants {
		if _, ok := drop[p.ID]; ok {
			continue
		}
		if u, ok := byID[p.ID]; ok {
			p = u
		}
		kept = append(kept, p)
	}
	v.participants = kept
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
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
		EventID:   v.eventID,
		Pending:   domain.PendingParticipants(v.participants),
		Joined:    domain.JoinedParticipants(v.participants),
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
