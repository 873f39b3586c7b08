package chat

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

var _ messageAPI = &messageAPIMock{}

type messageAPIMock struct {
	ListMessagesFunc  func(ctx context.Context, conversationID domain.ID) ([]domain.Message, error)
	CreateMessageFunc func(ctx context.Context, in domain.MessageInput) (*domain.Message, error)
	UpdateMessageFunc func(ctx context.Context, id domain.ID, in domain.MessageInput) (*domain.Message, error)
	DeleteMessageFunc func(ctx context.Context, id domain.ID) error

	calls struct {
		ListMessages []struct {
			Ctx            context.Context
			ConversationID domain.ID
		}
		CreateMessage []struct {
			Ctx context.Context
			In  domain.MessageInput
		}
		UpdateMessage []struct {
			Ctx context.Context
			ID  domain.ID
			In  domain.MessageInput
		}
		DeleteMessage []struct {
			Ctx context.Context
			ID  domain.ID
		}
	}
	lockListMessages  sync.RWMutex
	lockCreateMessage sync.RWMutex
	lockUpdateMessage sync.RWMutex
	lockDeleteMessage sync.RWMutex
}

func (mock *messageAPIMock) ListMessages(ctx context.Context, conversationID domain.ID) ([]domain.Message, error) {
	if mock.ListMessagesFunc == nil {
		panic("messageAPIMock.ListMessagesFunc: method is nil but messageAPI.ListMessages was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID domain.ID
	}{Ctx: ctx, ConversationID: conversationID}
	mock.lockListMessages.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, callInfo)
	mock.lockListMessages.Unlock()
	return mock.ListMessagesFunc(ctx, conversationID)
}

func (mock *messageAPIMock) ListMessagesCalls() []struct {
	Ctx            context.Context
	ConversationID domain.ID
} {
	mock.lockListMessages.RLock()
	calls := mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}

func (mock *messageAPIMock) CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	if mock.CreateMessageFunc == nil {
		panic("messageAPIMock.CreateMessageFunc: method is nil but messageAPI.CreateMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.MessageInput
	}{Ctx: ctx, In: in}
	mock.lockCreateMessage.Lock()
	mock.calls.CreateMessage = append(mock.calls.CreateMessage, callInfo)
	mock.lockCreateMessage.Unlock()
	return mock.CreateMessageFunc(ctx, in)
}

func (mock *messageAPIMock) CreateMessageCalls() []struct {
	Ctx context.Context
	In  domain.MessageInput
} {
	mock.lockCreateMessage.RLock()
	calls := mock.calls.CreateMessage
	mock.lockCreateMessage.RUnlock()
	return calls
}

func (mock *messageAPIMock) UpdateMessage(ctx context.Context, id domain.ID, in domain.MessageInput) (*domain.Message, error) {
	if mock.UpdateMessageFunc == nil {
		panic("messageAPIMock.UpdateMessageFunc: method is nil but messageAPI.UpdateMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
		In  domain.MessageInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockUpdateMessage.Lock()
	mock.calls.UpdateMessage = append(mock.calls.UpdateMessage, callInfo)
	mock.lockUpdateMessage.Unlock()
	return mock.UpdateMessageFunc(ctx, id, in)
}

func (mock *messageAPIMock) UpdateMessageCalls() []struct {
	Ctx context.Context
	ID  domain.ID
	In  domain.MessageInput
} {
	mock.lockUpdateMessage.RLock()
	calls := mock.calls.UpdateMessage
	mock.lockUpdateMessage.RUnlock()
	return calls
}

func (mock *messageAPIMock) DeleteMessage(ctx context.Context, id domain.ID) error {
	if mock.DeleteMessageFunc == nil {
		panic("messageAPIMock.DeleteMessageFunc: method is nil but messageAPI.DeleteMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteMessage.Lock()
	mock.calls.DeleteMessage = append(mock.calls.DeleteMessage, callInfo)
	mock.lockDeleteMessage.Unlock()
	return mock.DeleteMessageFunc(ctx, id)
}

func (mock *messageAPIMock) DeleteMessageCalls() []struct {
	Ctx context.Context
	ID  domain.ID
} {
	mock.lockDeleteMessage.RLock()
	calls := mock.calls.DeleteMessage
	mock.lockDeleteMessage.RUnlock()
	return calls
}
