// Package participant drives an event organizer's approve, refuse and remove
// decisions on join requests, one at a time or in bulk, and lets a user
// apply to an event.
package participant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/notice"
)

// ErrNotConfirmed is returned when the user declines a destructive action.
var ErrNotConfirmed = errors.New("participant: action not confirmed")

// DefaultConcurrency bounds parallel requests in bulk operations.
const DefaultConcurrency = 4

// Metric labels.
const (
	viewName    = "participant"
	kindApprove = "participant_approve"
	kindRefuse  = "participant_refuse"
	kindRemove  = "participant_remove"
	kindApply   = "participant_apply"
)

type participantAPI interface {
	ListParticipants(ctx context.Context, eventID domain.ID) ([]domain.Participant, error)
	CreateParticipant(ctx context.Context, in domain.ParticipantInput) (*domain.Participant, error)
	UpdateParticipant(ctx context.Context, id domain.ID, in domain.ParticipantInput) (*domain.Participant, error)
	DeleteParticipant(ctx context.Context, id domain.ID, in domain.ParticipantInput) error
}

type session interface {
	UserID() domain.ID
}

type noticeBoard interface {
	Success(text string) notice.Notice
	Error(err error) (notice.Notice, bool)
}

type recorder interface {
	ObservePoll(view string, err error)
	ObserveMutation(kind string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObservePoll(string, error)     {}
func (nopRecorder) ObserveMutation(string, error) {}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) { return f(ctx, prompt) }

// AlwaysConfirm approves every prompt.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

// Service performs participant transitions against the backend.
type Service struct {
	api         participantAPI
	session     session
	confirm     Confirmer
	metrics     recorder
	concurrency int
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a participant Service. A nil confirm approves
// everything; a nil metrics records nothing.
func NewService(
	log *slog.Logger,
	api participantAPI,
	sess session,
	confirm Confirmer,
	metrics recorder,
	concurrency int,
) *Service {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{
		api:         api,
		session:     sess,
		confirm:     confirm,
		metrics:     metrics,
		concurrency: concurrency,
		now:         time.Now,
		log:         log.With("service", "participant"),
	}
}

func displayName(p domain.Participant) string {
	if p.Username != "" {
		return p.Username
	}
	return "this participant"
}
