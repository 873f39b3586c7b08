package domain

// ParticipantStatus is the lifecycle state of a join request.
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusApproved ParticipantStatus = "approved"
	ParticipantStatusRefused  ParticipantStatus = "refused"
	ParticipantStatusRemoved  ParticipantStatus = "removed"
)

func (s ParticipantStatus) String() string { return string(s) }

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusPending, ParticipantStatusApproved, ParticipantStatusRefused, ParticipantStatusRemoved:
		return true
	}
	return false
}

// CanTransition reports whether the owner may move a participant from s to next.
// Only pending->approved, pending->refused and approved->removed are allowed.
func (s ParticipantStatus) CanTransition(next ParticipantStatus) bool {
	switch s {
	case ParticipantStatusPending:
		return next == ParticipantStatusApproved || next == ParticipantStatusRefused
	case ParticipantStatusApproved:
		return next == ParticipantStatusRemoved
	}
	return false
}

// NotificationType distinguishes join requests from everything else.
type NotificationType string

const (
	NotificationTypeGeneral     NotificationType = "general"
	NotificationTypeJoinRequest NotificationType = "join_request"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeGeneral, NotificationTypeJoinRequest:
		return true
	}
	return false
}
