package participant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Approve moves a pending request to approved and returns the updated entry.
func (s *Service) Approve(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	if err := checkTransition(p, domain.ParticipantStatusApproved); err != nil {
		return domain.Participant{}, err
	}
	return s.approve(ctx, p)
}

// Refuse moves a pending request to refused. The entry leaves every list.
func (s *Service) Refuse(ctx context.Context, p domain.Participant) error {
	if err := checkTransition(p, domain.ParticipantStatusRefused); err != nil {
		return err
	}
	return s.delete(ctx, p, domain.ParticipantStatusRefused, kindRefuse)
}

// Remove moves an approved member to removed after the user confirms.
func (s *Service) Remove(ctx context.Context, p domain.Participant) error {
	if err := checkTransition(p, domain.ParticipantStatusRemoved); err != nil {
		return err
	}
	if err := s.ask(ctx, fmt.Sprintf("Remove %s from the event?", displayName(p))); err != nil {
		return err
	}
	return s.delete(ctx, p, domain.ParticipantStatusRemoved, kindRemove)
}

func (s *Service) approve(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	_, err := s.api.UpdateParticipant(ctx, p.ID, p.InputFor(domain.ParticipantStatusApproved))
	s.metrics.ObserveMutation(kindApprove, err)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("participant: approve %s: %w", p.ID, err)
	}

	out := p
	out.Status = domain.ParticipantStatusApproved

	s.log.InfoContext(ctx, "participant approved",
		slog.String("participant_id", p.ID.String()),
		slog.String("event_id", p.EventID.String()),
	)
	return out, nil
}

func (s *Service) delete(ctx context.Context, p domain.Participant, status domain.ParticipantStatus, kind string) error {
	err := s.api.DeleteParticipant(ctx, p.ID, p.InputFor(status))
	s.metrics.ObserveMutation(kind, err)
	if err != nil {
		return fmt.Errorf("participant: %s %s: %w", status, p.ID, err)
	}

	s.log.InfoContext(ctx, "participant "+status.String(),
		slog.String("participant_id", p.ID.String()),
		slog.String("event_id", p.EventID.String()),
	)
	return nil
}

func (s *Service) ask(ctx context.Context, prompt string) error {
	ok, err := s.confirm.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("participant: confirm: %w", err)
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}

func checkTransition(p domain.Participant, next domain.ParticipantStatus) error {
	if !p.Status.CanTransition(next) {
		return fmt.Errorf("participant: %s %s -> %s: %w", p.ID, p.Status, next, domain.ErrInvalidTransition)
	}
	return nil
}
