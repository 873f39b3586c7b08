package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// ListParticipants returns every join request of an event, any status.
func (c *Client) ListParticipants(ctx context.Context, eventID domain.ID) ([]domain.Participant, error) {
	var ps []domain.Participant
	if err := c.do(ctx, "list participants", http.MethodGet, "/participate/post/"+url.PathEscape(eventID.String()), nil, &ps); err != nil {
		return nil, err
	}
	if ps == nil {
		ps = []domain.Participant{}
	}
	return ps, nil
}

// CreateParticipant files a join request.
func (c *Client) CreateParticipant(ctx context.Context, in domain.ParticipantInput) (*domain.Participant, error) {
	var p domain.Participant
	if err := c.do(ctx, "create participant", http.MethodPost, "/participate", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateParticipant changes a participant's status, e.g. to approved.
func (c *Client) UpdateParticipant(ctx context.Context, id domain.ID, in domain.ParticipantInput) (*domain.Participant, error) {
	var p domain.Participant
	if err := c.do(ctx, "update participant", http.MethodPut, "/participate/"+url.PathEscape(id.String()), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteParticipant refuses or removes a participant. The backend expects
// the same body as an update, carrying the target status.
func (c *Client) DeleteParticipant(ctx context.Context, id domain.ID, in domain.ParticipantInput) error {
	return c.do(ctx, "delete participant", http.MethodDelete, "/participate/"+url.PathEscape(id.String()), in, nil)
}
