package domain

import "strings"

// Message is one chat message in a conversation. ID never changes across edits.
type Message struct {
	ID             ID        `json:"id"`
	UserID         ID        `json:"user_id"`
	Username       string    `json:"username,omitempty"`
	UserImage      string    `json:"user_image,omitempty"`
	Body           string    `json:"message"`
	DatetimeChat   Timestamp `json:"datetime_chat"`
	ConversationID ID        `json:"post_games_id"`
}

// AuthoredBy reports whether userID wrote the message.
func (m Message) AuthoredBy(userID ID) bool {
	return !userID.IsZero() && m.UserID == userID
}

// MessageInput is the request body for creating or updating a message.
type MessageInput struct {
	Message        string    `json:"message"`
	DatetimeChat   Timestamp `json:"datetime_chat"`
	UserID         ID        `json:"user_id"`
	ConversationID ID        `json:"post_games_id"`
}

// Validate checks all fields and collects all errors.
func (i MessageInput) Validate() error {
	var errs []FieldError

	body := strings.TrimSpace(i.Message)
	if body == "" {
		errs = append(errs, FieldError{Field: "message", Message: "required"})
	}
	if i.UserID.IsZero() {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if i.ConversationID.IsZero() {
		errs = append(errs, FieldError{Field: "post_games_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
