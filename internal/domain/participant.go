package domain

// Participant is a user's request to join, or membership in, an event.
type Participant struct {
	ID        ID                `json:"id"`
	Status    ParticipantStatus `json:"participant_status"`
	UserID    ID                `json:"user_id"`
	EventID   ID                `json:"post_games_id"`
	AppliedAt Timestamp         `json:"participant_apply_datetime"`
	Username  string            `json:"username,omitempty"`
	UserImage string            `json:"user_image,omitempty"`
}

// ParticipantInput is the request body for every participant mutation.
type ParticipantInput struct {
	AppliedAt Timestamp         `json:"participant_apply_datetime"`
	Status    ParticipantStatus `json:"participant_status"`
	UserID    ID                `json:"user_id"`
	EventID   ID                `json:"post_games_id"`
}

// InputFor builds the mutation body moving p to status, keeping the original
// application timestamp.
func (p Participant) InputFor(status ParticipantStatus) ParticipantInput {
	return ParticipantInput{
		AppliedAt: p.AppliedAt,
		Status:    status,
		UserID:    p.UserID,
		EventID:   p.EventID,
	}
}

// PendingParticipants filters ps down to pending requests.
func PendingParticipants(ps []Participant) []Participant {
	return filterParticipants(ps, ParticipantStatusPending)
}

// JoinedParticipants filters ps down to approved members.
func JoinedParticipants(ps []Participant) []Participant {
	return filterParticipants(ps, ParticipantStatusApproved)
}

func filterParticipants(ps []Participant, status ParticipantStatus) []Participant {
	out := make([]Participant, 0, len(ps))
	for _, p := range ps {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
