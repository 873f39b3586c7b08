// Package push listens on an optional websocket for refresh hints. A hint
// only triggers an early poll; the polled data stays authoritative.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Topics carried in refresh frames. TopicAll nudges every subscriber.
const (
	TopicAll          = "*"
	TopicChat         = "chat"
	TopicNotification = "notification"
	TopicParticipant  = "participant"
)

const (
	frameRefresh = "refresh"
	readLimit    = 64 * 1024
)

// frame is one server message, e.g. {"type":"refresh","topic":"chat"}.
type frame struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
}

type tokenSource interface {
	Token() string
}

// Subscriber keeps one websocket open and fans refresh frames out to nudge
// channels.
type Subscriber struct {
	url            string
	reconnectDelay time.Duration
	session        tokenSource
	dialer         *websocket.Dialer
	log            *slog.Logger

	mu     sync.Mutex
	topics map[string][]chan struct{}
}

// NewSubscriber creates a Subscriber for a ws:// or wss:// url.
func NewSubscriber(url string, reconnectDelay time.Duration, sess tokenSource, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		url:            url,
		reconnectDelay: reconnectDelay,
		session:        sess,
		dialer:         &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		log:            logger.With("component", "push"),
		topics:         make(map[string][]chan struct{}),
	}
}

// Nudges returns a channel that receives a value after refresh frames for
// topic. Bursts coalesce into a single pending value. The returned func
// unregisters the channel and is safe to call more than once.
func (s *Subscriber) Nudges(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.topics[topic] = append(s.topics[topic], ch)
	s.mu.Unlock()

	return ch, func() { s.unregister(topic, ch) }
}

func (s *Subscriber) unregister(topic string, ch chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chans := s.topics[topic]
	for i, c := range chans {
		if c == ch {
			chans = append(chans[:i:i], chans[i+1:]...)
			break
		}
	}
	if len(chans) == 0 {
		delete(s.topics, topic)
		return
	}
	s.topics[topic] = chans
}

// listeners counts registered nudge channels across topics.
func (s *Subscriber) listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, chans := range s.topics {
		n += len(chans)
	}
	return n
}

// Run connects and reads frames until ctx is cancelled, reconnecting after
// every drop. It returns nil once ctx is done.
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		err := s.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		s.log.WarnContext(ctx, "push connection lost",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", s.reconnectDelay),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Subscriber) listen(ctx context.Context) error {
	header := http.Header{}
	if token := s.session.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := s.dialer.DialContext(ctx, s.url, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("push: dial: %w", err)
	}
	conn.SetReadLimit(readLimit)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	defer conn.Close()

	s.log.InfoContext(ctx, "push connected")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return errors.New("push: closed by server")
			}
			return fmt.Errorf("push: read: %w", err)
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			s.log.DebugContext(ctx, "push frame ignored", slog.String("error", err.Error()))
			continue
		}
		if f.Type != frameRefresh {
			continue
		}
		s.dispatch(f.Topic)
	}
}

func (s *Subscriber) dispatch(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for t, chans := range s.topics {
		if topic != TopicAll && topic != "" && t != topic {
			continue
		}
		for _, ch := range chans {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}
