package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Session is the signed-in user's identity and bearer token. It is built once
// at startup and is read-only afterwards, so it is safe to share.
type Session struct {
	token     string
	userID    domain.ID
	username  string
	role      string
	expiresAt time.Time
}

// NewSession builds a Session from a bearer token. When the token is a JWT,
// the user id, username, role and expiry are taken from its claims.
// userID overrides the claim and is required for opaque tokens.
// An empty token yields an anonymous session whose calls fail with
// domain.ErrUnauthorized before reaching the network.
func NewSession(token string, userID string) (*Session, error) {
	s := &Session{
		token:  strings.TrimSpace(token),
		userID: domain.ID(strings.TrimSpace(userID)),
	}
	if s.token == "" {
		return s, nil
	}

	info, err := inspectToken(s.token)
	switch {
	case err == nil:
		s.username = info.Username
		s.role = info.Role
		s.expiresAt = info.ExpiresAt
		if s.userID.IsZero() {
			s.userID = info.UserID
		}
	case s.userID.IsZero():
		return nil, fmt.Errorf("auth: session: token is not a JWT and no user id was given: %w", err)
	}

	if s.userID.IsZero() {
		return nil, fmt.Errorf("auth: session: token carries no user id")
	}

	return s, nil
}

// Token returns the raw bearer token, or "" for an anonymous session.
func (s *Session) Token() string { return s.token }

// UserID returns the signed-in user's id.
func (s *Session) UserID() domain.ID { return s.userID }

// Username returns the username claim, if the token carried one.
func (s *Session) Username() string { return s.username }

// Role returns the role claim, if the token carried one.
func (s *Session) Role() string { return s.role }

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool { return s != nil && s.token != "" }

// Expired reports whether the token's exp claim lies before now.
// Tokens without an expiry never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}

// Require returns domain.ErrUnauthorized when no usable token is present.
func (s *Session) Require(now time.Time) error {
	if !s.Authenticated() {
		return fmt.Errorf("auth: no session token: %w", domain.ErrUnauthorized)
	}
	if s.Expired(now) {
		return fmt.Errorf("auth: session token expired at %s: %w", s.expiresAt.Format(time.RFC3339), domain.ErrUnauthorized)
	}
	return nil
}
