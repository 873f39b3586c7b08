package participant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Apply creates a pending join request for the session user on eventID.
func (s *Service) Apply(ctx context.Context, eventID domain.ID) (*domain.Participant, error) {
	userID := s.session.UserID()
	if userID.IsZero() {
		return nil, fmt.Errorf("participant: apply: %w", domain.ErrUnauthorized)
	}
	if eventID.IsZero() {
		return nil, domain.NewValidationError("post_games_id", "required")
	}

	in := domain.ParticipantInput{
		AppliedAt: domain.NewTimestamp(s.now()),
		Status:    domain.ParticipantStatusPending,
		UserID:    userID,
		EventID:   eventID,
	}
	p, err := s.api.CreateParticipant(ctx, in)
	s.metrics.ObserveMutation(kindApply, err)
	if err != nil {
		return nil, fmt.Errorf("participant: apply: %w", err)
	}

	s.log.InfoContext(ctx, "join request sent",
		slog.String("event_id", eventID.String()),
		slog.String("participant_id", p.ID.String()),
	)
	return p, nil
}
