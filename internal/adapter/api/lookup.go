package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// GetUser fetches a user's public profile.
func (c *Client) GetUser(ctx context.Context, id domain.ID) (*domain.UserProfile, error) {
	var u domain.UserProfile
	if err := c.do(ctx, "get user", http.MethodGet, "/users/"+url.PathEscape(id.String()), nil, &u); err != nil {
		return nil, err
	}
	if u.ID.IsZero() {
		u.ID = id
	}
	return &u, nil
}

// GetEvent fetches an event by id.
func (c *Client) GetEvent(ctx context.Context, id domain.ID) (*domain.Event, error) {
	var e domain.Event
	if err := c.do(ctx, "get event", http.MethodGet, "/postGame/"+url.PathEscape(id.String()), nil, &e); err != nil {
		return nil, err
	}
	if e.ID.IsZero() {
		e.ID = id
	}
	return &e, nil
}
