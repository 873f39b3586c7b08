package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// sessionClaims mirrors what the backend puts into its access tokens.
// The user id is carried either as a custom user_id claim or as the subject.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID   domain.ID `json:"user_id,omitempty"`
	Username string    `json:"username,omitempty"`
	Role     string    `json:"role,omitempty"`
}

// tokenInfo is what a client can learn from a bearer token without the
// signing secret.
type tokenInfo struct {
	UserID    domain.ID
	Username  string
	Role      string
	ExpiresAt time.Time
}

// inspectToken decodes the claims of a JWT without verifying its signature.
// Verification belongs to the backend; the client only needs the identity.
func inspectToken(tokenString string) (tokenInfo, error) {
	if tokenString == "" {
		return tokenInfo{}, fmt.Errorf("token is empty")
	}

	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return tokenInfo{}, fmt.Errorf("parse token: %w", err)
	}

	info := tokenInfo{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if info.UserID.IsZero() {
		info.UserID = domain.ID(claims.Subject)
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}
