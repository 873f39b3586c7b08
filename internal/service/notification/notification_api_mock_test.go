package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

var _ notificationAPI = &notificationAPIMock{}

type notificationAPIMock struct {
	ListNotificationsFunc     func(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationsReadFunc func(ctx context.Context, ids []domain.ID) error

	calls struct {
		ListNotifications []struct {
			Ctx context.Context
		}
		MarkNotificationsRead []struct {
			Ctx context.Context
			Ids []domain.ID
		}
	}
	lockListNotifications     sync.RWMutex
	lockMarkNotificationsRead sync.RWMutex
}

func (mock *notificationAPIMock) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	if mock.ListNotificationsFunc == nil {
		panic("notificationAPIMock.ListNotificationsFunc: method is nil but notificationAPI.ListNotifications was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListNotifications.Lock()
	mock.calls.ListNotifications = append(mock.calls.ListNotifications, callInfo)
	mock.lockListNotifications.Unlock()
	return mock.ListNotificationsFunc(ctx)
}

func (mock *notificationAPIMock) ListNotificationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListNotifications.RLock()
	calls := mock.calls.ListNotifications
	mock.lockListNotifications.RUnlock()
	return calls
}

func (mock *notificationAPIMock) MarkNotificationsRead(ctx context.Context, ids []domain.ID) error {
	if mock.MarkNotificationsReadFunc == nil {
		panic("notificationAPIMock.MarkNotificationsReadFunc: method is nil but notificationAPI.MarkNotificationsRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []domain.ID
	}{Ctx: ctx, Ids: ids}
	mock.lockMarkNotificationsRead.Lock()
	mock.calls.MarkNotificationsRead = append(mock.calls.MarkNotificationsRead, callInfo)
	mock.lockMarkNotificationsRead.Unlock()
	return mock.MarkNotificationsReadFunc(ctx, ids)
}

func (mock *notificationAPIMock) MarkNotificationsReadCalls() []struct {
	Ctx context.Context
	Ids []domain.ID
} {
	mock.lockMarkNotificationsRead.RLock()
	calls := mock.calls.MarkNotificationsRead
	mock.lockMarkNotificationsRead.RUnlock()
	return calls
}
