package chat

import (
	"strings"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Composer holds the draft text and the message being edited, if any.
// A non-nil edit target turns the next submit into an update.
type Composer struct {
	draft   string
	editing *domain.Message
}

func (c *Composer) SetDraft(text string) { c.draft = text }

func (c *Composer) Draft() string { return c.draft }

// Blank reports whether the draft is empty after trimming whitespace.
func (c *Composer) Blank() bool { return strings.TrimSpace(c.draft) == "" }

// Editing returns a copy of the edit target, or nil.
func (c *Composer) Editing() *domain.Message {
	if c.editing == nil {
		return nil
	}
	m := *c.editing
	return &m
}

// BeginEdit targets m and loads its body into the draft.
func (c *Composer) BeginEdit(m domain.Message) {
	c.editing = &m
	c.draft = m.Body
}

// CancelEdit clears the draft and the edit target together.
func (c *Composer) CancelEdit() {
	c.draft = ""
	c.editing = nil
}

// Reset is called after every successful create or update.
func (c *Composer) Reset() { c.CancelEdit() }
