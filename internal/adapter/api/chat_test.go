package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

func TestClient_ListMessages(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chat/post/42", r.URL.Path)
		jsonHandler(http.StatusOK, `[
			{"id": 1, "message": "hello", "user_id": 7, "username": "ann", "datetime_chat": "03/01/2024 10:00:00", "post_games_id": 42},
			{"id": "m2", "message": "hi", "user_id": "8", "datetime_chat": "03/01/2024 10:00:05", "post_games_id": "42"}
		]`)(w, r)
	}))
	defer srv.Close()

	msgs, err := newTestClient(t, srv.URL).ListMessages(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, domain.ID("1"), msgs[0].ID)
	assert.Equal(t, domain.ID("7"), msgs[0].UserID)
	assert.Equal(t, "ann", msgs[0].Username)
	assert.Equal(t, "hello", msgs[0].Body)
	assert.Equal(t, 10, msgs[0].DatetimeChat.Hour())
	assert.Equal(t, domain.ID("42"), msgs[0].ConversationID)
	assert.Equal(t, domain.ID("m2"), msgs[1].ID)
}

func TestClient_ListMessages_NullBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(jsonHandler(http.StatusOK, `null`))
	defer srv.Close()

	msgs, err := newTestClient(t, srv.URL).ListMessages(context.Background(), "42")
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestClient_CreateMessage(t *testing.T) {
	t.Parallel()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		jsonHandler(http.StatusCreated, `{"id":"m1","message":"hello","user_id":"A","datetime_chat":"05/06/2024 07:08:09","post_games_id":"42"}`)(w, r)
	}))
	defer srv.Close()

	sent := domain.NewTimestamp(time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local))
	msg, err := newTestClient(t, srv.URL).CreateMessage(context.Background(), domain.MessageInput{
		Message:        "hello",
		DatetimeChat:   sent,
		UserID:         "A",
		ConversationID: "42",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ID("m1"), msg.ID)
	assert.Equal(t, map[string]any{
		"message":       "hello",
		"datetime_chat": "05/06/2024 07:08:09",
		"user_id":       "A",
		"post_games_id": "42",
	}, body)
}

func TestClient_UpdateMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/chat/m1", r.URL.Path)
		jsonHandler(http.StatusOK, `{"id":"m1","message":"edited","user_id":"A","post_games_id":"42"}`)(w, r)
	}))
	defer srv.Close()

	msg, err := newTestClient(t, srv.URL).UpdateMessage(context.Background(), "m1", domain.MessageInput{Message: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", msg.Body)
}

func TestClient_DeleteMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/chat/m1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(t, srv.URL).DeleteMessage(context.Background(), "m1"))
}

func TestClient_PathEscapesIDs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/post/a%2Fb", r.URL.EscapedPath())
		jsonHandler(http.StatusOK, `[]`)(w, r)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).ListMessages(context.Background(), "a/b")
	require.NoError(t, err)
}
