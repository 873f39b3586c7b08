package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Submitter turns a draft into a create or update call, and deletes messages.
// It does not check authorship; callers do.
type Submitter struct {
	api     messageAPI
	metrics recorder
	now     func() time.Time
	log     *slog.Logger
}

// NewSubmitter creates a Submitter. metrics may be nil.
func NewSubmitter(log *slog.Logger, api messageAPI, metrics recorder) *Submitter {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Submitter{
		api:     api,
		metrics: metrics,
		now:     time.Now,
		log:     log.With("service", "chat"),
	}
}

// Submit creates a message in conversationID when target is nil and updates
// target otherwise. The returned message is the server's copy.
func (s *Submitter) Submit(ctx context.Context, conversationID, userID domain.ID, draft string, target *domain.Message) (*domain.Message, error) {
	body := strings.TrimSpace(draft)
	if body == "" {
		return nil, ErrBlankDraft
	}

	in := domain.MessageInput{
		Message:        body,
		DatetimeChat:   domain.NewTimestamp(s.now()),
		UserID:         userID,
		ConversationID: conversationID,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if target == nil {
		msg, err := s.api.CreateMessage(ctx, in)
		s.metrics.ObserveMutation(kindCreate, err)
		if err != nil {
			return nil, fmt.Errorf("chat: create message: %w", err)
		}
		s.log.InfoContext(ctx, "message created",
			slog.String("conversation_id", conversationID.String()),
			slog.String("message_id", msg.ID.String()),
		)
		return msg, nil
	}

	msg, err := s.api.UpdateMessage(ctx, target.ID, in)
	s.metrics.ObserveMutation(kindUpdate, err)
	if err != nil {
		return nil, fmt.Errorf("chat: update message: %w", err)
	}
	s.log.InfoContext(ctx, "message updated",
		slog.String("conversation_id", conversationID.String()),
		slog.String("message_id", target.ID.String()),
	)
	return edited(*target, in, msg), nil
}

// edited is the stored copy of target after an update. The identity is always
// the target's; fields the reply leaves empty keep what was sent.
func edited(target domain.Message, in domain.MessageInput, reply *domain.Message) *domain.Message {
	out := target
	out.Body = in.Message
	out.DatetimeChat = in.DatetimeChat
	if reply != nil {
		if reply.Body != "" {
			out.Body = reply.Body
		}
		if !reply.DatetimeChat.IsZero() {
			out.DatetimeChat = reply.DatetimeChat
		}
		if reply.Username != "" {
			out.Username = reply.Username
		}
		if reply.UserImage != "" {
			out.UserImage = reply.UserImage
		}
	}
	return &out
}

// Delete removes message id on the server.
func (s *Submitter) Delete(ctx context.Context, id domain.ID) error {
	err := s.api.DeleteMessage(ctx, id)
	s.metrics.ObserveMutation(kindDelete, err)
	if err != nil {
		return fmt.Errorf("chat: delete message: %w", err)
	}
	s.log.InfoContext(ctx, "message deleted", slog.String("message_id", id.String()))
	return nil
}
