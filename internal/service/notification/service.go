// Package notification polls the session user's notifications, fills in the
// actor and event names, and handles the mark-read-then-open flow.
package notification

import (
	"context"
	"errors"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/notice"
)

var (
	// ErrAlreadyMounted is returned by a second Mount without Unmount.
	ErrAlreadyMounted = errors.New("notification: view already mounted")
)

const (
	viewName     = "notification"
	kindMarkRead = "notification_read"
)

type notificationAPI interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationsRead(ctx context.Context, ids []domain.ID) error
}

type lookup interface {
	GetUser(ctx context.Context, id domain.ID) (*domain.UserProfile, error)
	GetEvent(ctx context.Context, id domain.ID) (*domain.Event, error)
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
