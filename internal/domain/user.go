package domain

import "strings"

// UserProfile is the public part of a user, used to denormalize names.
type UserProfile struct {
	ID        ID     `json:"id"`
	Username  string `json:"username"`
	UserImage string `json:"user_image"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName prefers the username, then the full name.
func (u UserProfile) DisplayName() string {
	if name := strings.TrimSpace(u.Username); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// Event is the board-game event a conversation and its participants belong to.
type Event struct {
	ID   ID     `json:"id"`
	Name string `json:"name_games"`
}
