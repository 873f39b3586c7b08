package chat

import "github.com/heartmarshall/meetup-client/internal/domain"

// Store is the ordered message list of one conversation. It is not safe for
// concurrent use; View guards it.
type Store struct {
	messages []domain.Message
}

// Replace swaps the whole list for ms.
func (s *Store) Replace(ms []domain.Message) {
	s.messages = append(make([]domain.Message, 0, len(ms)), ms...)
}

// Append adds m at the tail.
func (s *Store) Append(m domain.Message) {
	s.messages = append(s.messages, m)
}

// ReplaceByID swaps the entry with m's id for m and reports whether one was found.
func (s *Store) ReplaceByID(m domain.Message) bool {
	for i := range s.messages {
		if s.messages[i].ID == m.ID {
			s.messages[i] = m
			return true
		}
	}
	return false
}

// RemoveByID drops every entry with id and reports whether any was removed.
func (s *Store) RemoveByID(id domain.ID) bool {
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	removed := len(kept) != len(s.messages)
	clear(s.messages[len(kept):])
	s.messages = kept
	return removed
}

// Find returns the entry with id.
func (s *Store) Find(id domain.ID) (domain.Message, bool) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Message{}, false
}

// Len returns the number of messages.
func (s *Store) Len() int { return len(s.messages) }

// Snapshot returns a copy of the list.
func (s *Store) Snapshot() []domain.Message {
	return append([]domain.Message(nil), s.messages...)
}
