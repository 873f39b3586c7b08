package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

func TestClient_ListParticipants(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/participate/post/7", r.URL.Path)
		jsonHandler(http.StatusOK, `[
			{"id":1,"participant_status":"pending","user_id":5,"post_games_id":7,"participant_apply_datetime":"01/15/2024 18:00:00"},
			{"id":2,"participant_status":"approved","user_id":6,"post_games_id":7}
		]`)(w, r)
	}))
	defer srv.Close()

	ps, err := newTestClient(t, srv.URL).ListParticipants(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, domain.ParticipantStatusPending, ps[0].Status)
	assert.Equal(t, "01/15/2024 18:00:00", ps[0].AppliedAt.Wire())
	assert.Equal(t, domain.ParticipantStatusApproved, ps[1].Status)
}

func TestClient_UpdateParticipant(t *testing.T) {
	t.Parallel()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/participate/1", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		jsonHandler(http.StatusOK, `{"id":1,"participant_status":"approved","user_id":5,"post_games_id":7}`)(w, r)
	}))
	defer srv.Close()

	p := domain.Participant{ID: "1", Status: domain.ParticipantStatusPending, UserID: "5", EventID: "7"}
	p.AppliedAt, _ = domain.ParseTimestamp("01/15/2024 18:00:00")

	got, err := newTestClient(t, srv.URL).UpdateParticipant(context.Background(), p.ID, p.InputFor(domain.ParticipantStatusApproved))
	require.NoError(t, err)

	assert.Equal(t, domain.ParticipantStatusApproved, got.Status)
	assert.Equal(t, map[string]any{
		"participant_apply_datetime": "01/15/2024 18:00:00",
		"participant_status":         "approved",
		"user_id":                    "5",
		"post_games_id":              "7",
	}, body)
}

func TestClient_DeleteParticipantSendsBody(t *testing.T) {
	t.Parallel()

	var body domain.ParticipantInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/participate/2", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := domain.Participant{ID: "2", Status: domain.ParticipantStatusApproved, UserID: "6", EventID: "7"}
	err := newTestClient(t, srv.URL).DeleteParticipant(context.Background(), p.ID, p.InputFor(domain.ParticipantStatusRemoved))

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusRemoved, body.Status)
	assert.Equal(t, domain.ID("6"), body.UserID)
}

func TestClient_CreateParticipant(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/participate", r.URL.Path)
		jsonHandler(http.StatusCreated, `{"id":10,"participant_status":"pending","user_id":5,"post_games_id":7}`)(w, r)
	}))
	defer srv.Close()

	p, err := newTestClient(t, srv.URL).CreateParticipant(context.Background(), domain.ParticipantInput{
		Status: domain.ParticipantStatusPending, UserID: "5", EventID: "7",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("10"), p.ID)
}

func TestClient_GetUser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5", r.URL.Path)
		jsonHandler(http.StatusOK, `{"username":"ann","user_image":"a.png","first_name":"Ann","last_name":"Lee"}`)(w, r)
	}))
	defer srv.Close()

	u, err := newTestClient(t, srv.URL).GetUser(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("5"), u.ID)
	assert.Equal(t, "ann", u.DisplayName())
	assert.Equal(t, "a.png", u.UserImage)
}

func TestClient_GetEvent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/postGame/7", r.URL.Path)
		jsonHandler(http.StatusOK, `{"name_games":"Catan","detail_post":"bring snacks"}`)(w, r)
	}))
	defer srv.Close()

	e, err := newTestClient(t, srv.URL).GetEvent(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("7"), e.ID)
	assert.Equal(t, "Catan", e.Name)
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(jsonHandler(http.StatusNotFound, `{"message":"no such game"}`))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetEvent(context.Background(), "7")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
