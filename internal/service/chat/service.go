// Package chat keeps one conversation's messages in sync with the backend and
// drives the compose, edit and delete flows for the session user.
package chat

import (
	"context"
	"errors"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/notice"
)

var (
	// ErrBlankDraft is returned when a whitespace-only draft is submitted.
	ErrBlankDraft = errors.New("chat: draft is blank")
	// ErrMissingConversation is returned by Mount without a conversation id.
	ErrMissingConversation = errors.New("chat: conversation id is missing")
	// ErrAlreadyMounted is returned by a second Mount without Unmount.
	ErrAlreadyMounted = errors.New("chat: view already mounted")
	// ErrNotMounted is returned by actions on an unmounted view.
	ErrNotMounted = errors.New("chat: view not mounted")
	// ErrSendInProgress is returned while a previous submit is in flight.
	ErrSendInProgress = errors.New("chat: send in progress")
)

// Metric labels.
const (
	viewName   = "chat"
	kindCreate = "message_create"
	kindUpdate = "message_update"
	kindDelete = "message_delete"
)

type messageAPI interface {
	ListMessages(ctx context.Context, conversationID domain.ID) ([]domain.Message, error)
	CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error)
	UpdateMessage(ctx context.Context, id domain.ID, in domain.MessageInput) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id domain.ID) error
}

type session interface {
	UserID() domain.ID
}

type noticeBoard interface {
	Error(err error) (notice.Notice, bool)
}

type recorder interface {
	ObservePoll(view string, err error)
	ObserveMutation(kind string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObservePoll(string, error)     {}
func (nopRecorder) ObserveMutation(string, error) {}
