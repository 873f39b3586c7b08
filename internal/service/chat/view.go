package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/poll"
)

// DefaultPollInterval is used when Options.Interval is not positive.
const DefaultPollInterval = 5 * time.Second

// Options configures a View.
type Options struct {
	Interval time.Duration
	Poll     []poll.Option
}

// State is an immutable snapshot of a View.
type State struct {
	ConversationID domain.ID
	Messages       []domain.Message
	Draft          string
	Editing        *domain.Message
	Loading        bool
	Sending        bool
	PollError      bool
}

// View is the chat screen for one conversation at a time.
type View struct {
	api       messageAPI
	submitter *Submitter
	session   session
	board     noticeBoard
	metrics   recorder
	interval  time.Duration
	pollOpts  []poll.Option
	log       *slog.Logger

	mu             sync.Mutex
	conversationID domain.ID
	store          Store
	composer       Composer
	loading        bool
	sending        bool
	pollErr        bool
	generation     uint64
	loop           *poll.Loop
	subs           map[int]func(State)
	nextSub        int
}

// NewView creates a View. metrics may be nil.
func NewView(
	log *slog.Logger,
	api messageAPI,
	sess session,
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
		api:       api,
		submitter: NewSubmitter(log, api, metrics),
		session:   sess,
		board:     board,
		metrics:   metrics,
		interval:  opts.Interval,
		pollOpts:  opts.Poll,
		log:       log.With("view", viewName),
		subs:      make(map[int]func(State)),
	}
}

// Mount starts polling conversationID. The store and composer start empty.
func (v *View) Mount(ctx context.Context, conversationID domain.ID) error {
	if conversationID.IsZero() {
		v.log.ErrorContext(ctx, "chat mounted without a conversation id")
		return ErrMissingConversation
	}

	v.mu.Lock()
	if v.loop != nil {
		v.mu.Unlock()
		return ErrAlreadyMounted
	}
	v.generation++
	gen := v.generation
	v.conversationID = conversationID
	v.store.Replace(nil)
	v.composer.Reset()
	v.loading = true
	v.pollErr = false
	v.sending = false

	opts := append([]poll.Option{poll.WithName(viewName)}, v.pollOpts...)
	loop := poll.New(v.interval, v.fetcher(conversationID, gen), v.log, opts...)
	v.loop = loop
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)

	if err := loop.Start(ctx); err != nil {
		return fmt.Errorf("chat: mount: %w", err)
	}
	v.log.InfoContext(ctx, "chat mounted", slog.String("conversation_id", conversationID.String()))
	return nil
}

// Unmount stops polling. Results that arrive afterwards are discarded.
// It does not wait for an in-flight fetch, so subscribers may call it.
// It is safe to call on an unmounted view.
func (v *View) Unmount() {
	v.mu.Lock()
	loop := v.loop
	v.loop = nil
	v.generation++
	v.loading = false
	v.sending = false
	v.mu.Unlock()

	if loop != nil {
		loop.Cancel()
	}
}

// SwitchConversation stops the current poll loop and mounts conversationID.
func (v *View) SwitchConversation(ctx context.Context, conversationID domain.ID) error {
	v.Unmount()
	return v.Mount(ctx, conversationID)
}

func (v *View) fetcher(conversationID domain.ID, gen uint64) poll.FetchFunc {
	return func(ctx context.Context) error {
		msgs, err := v.api.ListMessages(ctx, conversationID)

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
			return fmt.Errorf("chat: poll: %w", err)
		}
		v.pollErr = false
		v.store.Replace(msgs)
		state, subs := v.snapshotLocked()
		v.mu.Unlock()

		notify(subs, state)
		return nil
	}
}

// SetDraft updates the draft text.
func (v *View) SetDraft(text string) {
	v.update(func() { v.composer.SetDraft(text) })
}

// BeginEdit targets message id for editing. Only the author may edit.
func (v *View) BeginEdit(id domain.ID) error {
	v.mu.Lock()
	m, err := v.ownedLocked(id)
	if err != nil {
		v.mu.Unlock()
		return err
	}
	v.composer.BeginEdit(m)
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
	return nil
}

// CancelEdit clears the draft and the edit target together.
func (v *View) CancelEdit() {
	v.update(v.composer.CancelEdit)
}

// Send submits the draft. With an edit target it updates that message in
// place, otherwise it appends the server's new message. On failure the draft,
// the edit target and the store are left untouched.
func (v *View) Send(ctx context.Context) error {
	v.mu.Lock()
	if v.loop == nil {
		v.mu.Unlock()
		return ErrNotMounted
	}
	if v.sending {
		v.mu.Unlock()
		return ErrSendInProgress
	}
	if v.composer.Blank() {
		v.mu.Unlock()
		return ErrBlankDraft
	}
	gen := v.generation
	conversationID := v.conversationID
	draft := v.composer.Draft()
	target := v.composer.Editing()
	v.sending = true
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)

	msg, err := v.submitter.Submit(ctx, conversationID, v.session.UserID(), draft, target)

	v.mu.Lock()
	if gen != v.generation {
		v.mu.Unlock()
		return err
	}
	v.sending = false
	if err == nil {
		if target == nil {
			v.store.Append(*msg)
		} else {
			v.store.ReplaceByID(*msg)
		}
		v.composer.Reset()
	}
	state, subs = v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
	if err != nil {
		v.board.Error(err)
		return err
	}
	return nil
}

// Delete removes message id. Only the author may delete.
func (v *View) Delete(ctx context.Context, id domain.ID) error {
	v.mu.Lock()
	if v.loop == nil {
		v.mu.Unlock()
		return ErrNotMounted
	}
	if _, err := v.ownedLocked(id); err != nil {
		v.mu.Unlock()
		return err
	}
	gen := v.generation
	v.mu.Unlock()

	if err := v.submitter.Delete(ctx, id); err != nil {
		v.board.Error(err)
		return err
	}

	v.mu.Lock()
	if gen != v.generation {
		v.mu.Unlock()
		return nil
	}
	v.store.RemoveByID(id)
	if editing := v.composer.Editing(); editing != nil && editing.ID == id {
		v.composer.CancelEdit()
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

func (v *View) ownedLocked(id domain.ID) (domain.Message, error) {
	m, ok := v.store.Find(id)
	if !ok {
		return domain.Message{}, fmt.Errorf("chat: message %s: %w", id, domain.ErrNotFound)
	}
	if !m.AuthoredBy(v.session.UserID()) {
		return domain.Message{}, fmt.Errorf("chat: message %s: %w", id, domain.ErrForbidden)
	}
	return m, nil
}

func (v *View) update(fn func()) {
	v.mu.Lock()
	fn()
	state, subs := v.snapshotLocked()
	v.mu.Unlock()

	notify(subs, state)
}

func (v *View) snapshotLocked() (State, []func(State)) {
	state := State{
		ConversationID: v.conversationID,
		Messages:       v.store.Snapshot(),
		Draft:          v.composer.Draft(),
		Editing:        v.composer.Editing(),
		Loading:        v.loading,
		Sending:        v.sending,
		PollError:      v.pollErr,
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
