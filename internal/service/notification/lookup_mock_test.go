package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

var _ lookup = &lookupMock{}

type lookupMock struct {
	GetUserFunc  func(ctx context.Context, id domain.ID) (*domain.UserProfile, error)
	GetEventFunc func(ctx context.Context, id domain.ID) (*domain.Event, error)

	calls struct {
		GetUser []struct {
			Ctx context.Context
			ID  domain.ID
		}
		GetEvent []struct {
			Ctx context.Context
			ID  domain.ID
		}
	}
	lockGetUser  sync.RWMutex
	lockGetEvent sync.RWMutex
}

func (mock *lookupMock) GetUser(ctx context.Context, id domain.ID) (*domain.UserProfile, error) {
	if mock.GetUserFunc == nil {
		panic("lookupMock.GetUserFunc: method is nil but lookup.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
	}{Ctx: ctx, ID: id}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *lookupMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  domain.ID
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *lookupMock) GetEvent(ctx context.Context, id domain.ID) (*domain.Event, error) {
	if mock.GetEventFunc == nil {
		panic("lookupMock.GetEventFunc: method is nil but lookup.GetEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
	}{Ctx: ctx, ID: id}
	mock.lockGetEvent.Lock()
	mock.calls.GetEvent = append(mock.calls.GetEvent, callInfo)
	mock.lockGetEvent.Unlock()
	return mock.GetEventFunc(ctx, id)
}

func (mock *lookupMock) GetEventCalls() []struct {
	Ctx context.Context
	ID  domain.ID
} {
	mock.lockGetEvent.RLock()
	calls := mock.calls.GetEvent
	mock.lockGetEvent.RUnlock()
	return calls
}
