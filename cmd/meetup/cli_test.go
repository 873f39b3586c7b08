package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/service/chat"
	"github.com/heartmarshall/meetup-client/internal/service/participant"
)

// ---------------------------------------------------------------------------
// Prompt
// ---------------------------------------------------------------------------

func TestPromptConfirmer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"sure\n", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			ok, err := newPromptConfirmer(strings.NewReader(tt.input), &out).Confirm(context.Background(), "Remove Ann?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, "Remove Ann? [y/N] ", out.String())
		})
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	var got []string
	for line := range readLines(context.Background(), strings.NewReader("hello \n/edit 4\n")) {
		got = append(got, line)
	}
	assert.Equal(t, []string{"hello", "/edit 4"}, got)

	cmd, arg := splitCommand(got[1])
	assert.Equal(t, "/edit", cmd)
	assert.Equal(t, "4", arg)
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestChatPrinter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := newChatPrinter(&out, "me")
	at := domain.NewTimestamp(time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC))

	p.update(chat.State{Loading: true})
	assert.Empty(t, out.String())

	p.update(chat.State{Messages: []domain.Message{
		{ID: "1", UserID: "u2", Username: "Ann", Body: "hi", DatetimeChat: at},
		{ID: "2", UserID: "me", Body: "hey", DatetimeChat: at},
	}})
	assert.Equal(t, "03/05 18:30 #1 Ann: hi\n03/05 18:30 #2 you: hey\n", out.String())

	out.Reset()
	p.update(chat.State{Messages: []domain.Message{
		{ID: "2", UserID: "me", Body: "hey all", DatetimeChat: at},
	}})
	assert.Equal(t, "03/05 18:30 #2 you: hey all (edited)\nmessage 1 deleted\n", out.String())
}

func TestReportLocal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	reportLocal(&out, &domain.RemoteError{Op: "create message", Code: domain.CodeNetwork})
	reportLocal(&out, nil)
	assert.Empty(t, out.String())

	reportLocal(&out, chat.ErrBlankDraft)
	assert.Equal(t, "[error] chat: draft is blank\n", out.String())
}

func TestActionErr(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	assert.NoError(t, actionErr(&out, nil))
	assert.NoError(t, actionErr(&out, participant.ErrNotConfirmed))
	assert.Equal(t, "cancelled\n", out.String())
	assert.ErrorIs(t, actionErr(&out, domain.ErrInvalidTransition), errReported)
}

func TestBulkErr(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	assert.NoError(t, bulkErr(&out, "approved", participant.BulkResult{}))
	assert.Equal(t, "no participants to approve\n", out.String())

	out.Reset()
	res := participant.BulkResult{
		Succeeded: []domain.Participant{{ID: "a", Username: "Ann"}},
		Failed: []participant.ItemError{{
			Participant: domain.Participant{ID: "b", UserID: "9"},
			Err:         domain.ErrForbidden,
		}},
	}
	assert.ErrorIs(t, bulkErr(&out, "approved", res), errReported)
	assert.Equal(t, "partial: 1 of 2 approved\n  #b user 9: You are not allowed to do that.\n", out.String())
}
