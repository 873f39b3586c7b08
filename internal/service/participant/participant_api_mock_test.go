package participant

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

var _ participantAPI = &participantAPIMock{}

type participantAPIMock struct {
	ListParticipantsFunc  func(ctx context.Context, eventID domain.ID) ([]domain.Participant, error)
	CreateParticipantFunc func(ctx context.Context, in domain.ParticipantInput) (*domain.Participant, error)
	UpdateParticipantFunc func(ctx context.Context, id domain.ID, in domain.ParticipantInput) (*domain.Participant, error)
	DeleteParticipantFunc func(ctx context.Context, id domain.ID, in domain.ParticipantInput) error

	calls struct {
		ListParticipants []struct {
			Ctx     context.Context
			EventID domain.ID
		}
		CreateParticipant []struct {
			Ctx context.Context
			In  domain.ParticipantInput
		}
		UpdateParticipant []struct {
			Ctx context.Context
			ID  domain.ID
			In  domain.ParticipantInput
		}
		DeleteParticipant []struct {
			Ctx context.Context
			ID  domain.ID
			In  domain.ParticipantInput
		}
	}
	lockListParticipants  sync.RWMutex
	lockCreateParticipant sync.RWMutex
	lockUpdateParticipant sync.RWMutex
	lockDeleteParticipant sync.RWMutex
}

func (mock *participantAPIMock) ListParticipants(ctx context.Context, eventID domain.ID) ([]domain.Participant, error) {
	if mock.ListParticipantsFunc == nil {
		panic("participantAPIMock.ListParticipantsFunc: method is nil but participantAPI.ListParticipants was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID domain.ID
	}{Ctx: ctx, EventID: eventID}
	mock.lockListParticipants.Lock()
	mock.calls.ListParticipants = append(mock.calls.ListParticipants, callInfo)
	mock.lockListParticipants.Unlock()
	return mock.ListParticipantsFunc(ctx, eventID)
}

func (mock *participantAPIMock) ListParticipantsCalls() []struct {
	Ctx     context.Context
	EventID domain.ID
} {
	mock.lockListParticipants.RLock()
	calls := mock.calls.ListParticipants
	mock.lockListParticipants.RUnlock()
	return calls
}

func (mock *participantAPIMock) CreateParticipant(ctx context.Context, in domain.ParticipantInput) (*domain.Participant, error) {
	if mock.CreateParticipantFunc == nil {
		panic("participantAPIMock.CreateParticipantFunc: method is nil but participantAPI.CreateParticipant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.ParticipantInput
	}{Ctx: ctx, In: in}
	mock.lockCreateParticipant.Lock()
	mock.calls.CreateParticipant = append(mock.calls.CreateParticipant, callInfo)
	mock.lockCreateParticipant.Unlock()
	return mock.CreateParticipantFunc(ctx, in)
}

func (mock *participantAPIMock) CreateParticipantCalls() []struct {
	Ctx context.Context
	In  domain.ParticipantInput
} {
	mock.lockCreateParticipant.RLock()
	calls := mock.calls.CreateParticipant
	mock.lockCreateParticipant.RUnlock()
	return calls
}

func (mock *participantAPIMock) UpdateParticipant(ctx context.Context, id domain.ID, in domain.ParticipantInput) (*domain.Participant, error) {
	if mock.UpdateParticipantFunc == nil {
		panic("participantAPIMock.UpdateParticipantFunc: method is nil but participantAPI.UpdateParticipant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
		In  domain.ParticipantInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockUpdateParticipant.Lock()
	mock.calls.UpdateParticipant = append(mock.calls.UpdateParticipant, callInfo)
	mock.lockUpdateParticipant.Unlock()
	return mock.UpdateParticipantFunc(ctx, id, in)
}

func (mock *participantAPIMock) UpdateParticipantCalls() []struct {
	Ctx context.Context
	ID  domain.ID
	In  domain.ParticipantInput
} {
	mock.lockUpdateParticipant.RLock()
	calls := mock.calls.UpdateParticipant
	mock.lockUpdateParticipant.RUnlock()
	return calls
}

func (mock *participantAPIMock) DeleteParticipant(ctx context.Context, id domain.ID, in domain.ParticipantInput) error {
	if mock.DeleteParticipantFunc == nil {
		panic("participantAPIMock.DeleteParticipantFunc: method is nil but participantAPI.DeleteParticipant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
		In  domain.ParticipantInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockDeleteParticipant.Lock()
	mock.calls.DeleteParticipant = append(mock.calls.DeleteParticipant, callInfo)
	mock.lockDeleteParticipant.Unlock()
	return mock.DeleteParticipantFunc(ctx, id, in)
}

func (mock *participantAPIMock) DeleteParticipantCalls() []struct {
	Ctx context.Context
	ID  domain.ID
	In  domain.ParticipantInput
} {
	mock.lockDeleteParticipant.RLock()
	calls := mock.calls.DeleteParticipant
	mock.lockDeleteParticipant.RUnlock()
	return calls
}
