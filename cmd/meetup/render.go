package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/notice"
	"github.com/heartmarshall/meetup-client/internal/service/chat"
	"github.com/heartmarshall/meetup-client/internal/service/notification"
	"github.com/heartmarshall/meetup-client/internal/service/participant"
)

const shortTime = "01/02 15:04"

// watchNotices prints every new notice once until ctx is done.
func watchNotices(ctx context.Context, board *notice.Board, w io.Writer) {
	var mu sync.Mutex
	seen := make(map[string]struct{})

	unsubscribe := board.Subscribe(func(ns []notice.Notice) {
		mu.Lock()
		defer mu.Unlock()
		for _, n := range ns {
			if _, ok := seen[n.ID]; ok {
				continue
			}
			seen[n.ID] = struct{}{}
			fmt.Fprintf(w, "[%s] %s\n", n.Level, n.Text)
		}
	})
	go func() {
		<-ctx.Done()
		unsubscribe()
	}()
}

// reportLocal prints errors the views did not post to the notice board:
// anything raised before a request was built.
func reportLocal(w io.Writer, err error) {
	if err == nil || posted(err) {
		return
	}
	text := notice.Describe(err)
	if errors.Is(err, chat.ErrBlankDraft) || errors.Is(err, chat.ErrSendInProgress) || errors.Is(err, chat.ErrNotMounted) {
		text = err.Error()
	}
	fmt.Fprintf(w, "[error] %s\n", text)
}

func posted(err error) bool {
	var re *domain.RemoteError
	var ve *domain.ValidationError
	return errors.As(err, &re) || errors.As(err, &ve) || errors.Is(err, context.Canceled)
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

// chatPrinter prints new and edited messages and notes deletions.
type chatPrinter struct {
	w  io.Writer
	me domain.ID

	mu     sync.Mutex
	bodies map[domain.ID]string
	errs   bool
}

func newChatPrinter(w io.Writer, me domain.ID) *chatPrinter {
	return &chatPrinter{w: w, me: me, bodies: make(map[domain.ID]string)}
}

func (p *chatPrinter) update(s chat.State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s.PollError && !p.errs {
		fmt.Fprintln(p.w, "(offline, retrying)")
	}
	p.errs = s.PollError
	if s.Loading {
		return
	}

	current := make(map[domain.ID]struct{}, len(s.Messages))
	for _, m := range s.Messages {
		current[m.ID] = struct{}{}
		body, ok := p.bodies[m.ID]
		switch {
		case !ok:
			fmt.Fprintln(p.w, formatMessage(m, p.me))
		case body != m.Body:
			fmt.Fprintln(p.w, formatMessage(m, p.me)+" (edited)")
		}
		p.bodies[m.ID] = m.Body
	}
	for id := range p.bodies {
		if _, ok := current[id]; !ok {
			fmt.Fprintf(p.w, "message %s deleted\n", id)
			delete(p.bodies, id)
		}
	}
}

func formatMessage(m domain.Message, me domain.ID) string {
	author := m.Username
	if author == "" {
		author = domain.UnknownUser
	}
	if m.AuthoredBy(me) {
		author = "you"
	}
	when := ""
	if !m.DatetimeChat.IsZero() {
		when = m.DatetimeChat.Format(shortTime) + " "
	}
	return fmt.Sprintf("%s#%s %s: %s", when, m.ID, author, m.Body)
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

// inboxPrinter reprints the inbox whenever its content changes.
type inboxPrinter struct {
	w io.Writer

	mu   sync.Mutex
	last string
}

func (p *inboxPrinter) update(s notification.State) {
	if s.Loading {
		return
	}
	text := formatInbox(s.Inbox)

	p.mu.Lock()
	defer p.mu.Unlock()
	if text == p.last {
		return
	}
	p.last = text
	fmt.Fprint(p.w, text)
}

func formatInbox(inbox notification.Inbox) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Join requests (%d)\n", len(inbox.JoinRequests))
	for _, n := range inbox.JoinRequests {
		b.WriteString(formatNotification(n, fmt.Sprintf("%s wants to join %s", n.ActorName, n.EventName)))
	}
	fmt.Fprintf(&b, "Other (%d)\n", len(inbox.Others))
	for _, n := range inbox.Others {
		text := n.Message
		if text == "" {
			text = fmt.Sprintf("%s in %s", n.ActorName, n.EventName)
		}
		b.WriteString(formatNotification(n, text))
	}
	return b.String()
}

func formatNotification(n domain.Notification, text string) string {
	mark := "*"
	if n.Read {
		mark = " "
	}
	return fmt.Sprintf(" %s #%s %s  %s\n", mark, n.ID, n.CreatedAt.Format(shortTime), text)
}

// ---------------------------------------------------------------------------
// Participants
// ---------------------------------------------------------------------------

func printParticipants(w io.Writer, s participant.State) {
	fmt.Fprintf(w, "Pending (%d)\n", len(s.Pending))
	for _, p := range s.Pending {
		fmt.Fprintf(w, "  #%s %s  applied %s\n", p.ID, participantName(p), p.AppliedAt.Format(shortTime))
	}
	fmt.Fprintf(w, "Joined (%d)\n", len(s.Joined))
	for _, p := range s.Joined {
		fmt.Fprintf(w, "  #%s %s\n", p.ID, participantName(p))
	}
}

func participantName(p domain.Participant) string {
	if p.Username != "" {
		return p.Username
	}
	return "user " + p.UserID.String()
}

func printBulk(w io.Writer, verb string, res participant.BulkResult) {
	fmt.Fprintf(w, "%s: %d of %d %s\n", res.Outcome(), len(res.Succeeded), res.Total(), verb)
	for _, f := range res.Failed {
		fmt.Fprintf(w, "  #%s %s: %s\n", f.Participant.ID, participantName(f.Participant), notice.Describe(f.Err))
	}
}
