package domain

// Placeholders shown when a denormalized name cannot be resolved.
const (
	UnknownUser = "Unknown User"
	UnknownGame = "Unknown Game"
)

// Notification is a server-generated notice addressed to the session user.
type Notification struct {
	ID        ID               `json:"id"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	EventID   ID               `json:"post_games_id"`
	ActorID   ID               `json:"user_id"`
	CreatedAt Timestamp        `json:"created_at"`
	Message   string           `json:"message,omitempty"`
	ActorName string           `json:"username,omitempty"`
	EventName string           `json:"name_games,omitempty"`
}

// IsJoinRequest treats any unknown type as general.
func (n Notification) IsJoinRequest() bool {
	return n.Type == NotificationTypeJoinRequest
}

// NotificationList is the envelope returned by the notification listing.
type NotificationList struct {
	Messages []Notification `json:"messages"`
}

// MarkReadInput is the request body for marking notifications as read.
type MarkReadInput struct {
	NotificationIDs []ID `json:"notification_id"`
}
