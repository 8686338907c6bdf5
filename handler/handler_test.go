package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle-solver/service"
	"github.com/kodekulture/wordle-solver/solver"
	"github.com/kodekulture/wordle-solver/solver/word"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	dict := word.Load(strings.NewReader("sound\ncould\ncount\nbound\ncream\n"))
	srv, err := service.New(context.Background(), nil, nil, dict)
	require.NoError(t, err)
	return New(srv)
}

func TestHandler_Health(t *testing.T) {
	h := testHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestHandler_Solve(t *testing.T) {
	h := testHandler(t)

	body := strings.NewReader(`{"answer":"could"}`)
	req := httptest.NewRequest(http.MethodPost, "/solve", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result solver.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, solver.Solved.String(), result.Status)
	assert.Equal(t, "could", result.Answer.Word)
	assert.NotEmpty(t, result.ID)
}

func TestHandler_SolveMissingAnswer(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code, "answer is required")
}

func TestHandler_CreateAndFetchRoom(t *testing.T) {
	h := testHandler(t)

	body := strings.NewReader(`{"answer":"could"}`)
	req := httptest.NewRequest(http.MethodPost, "/room", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created roomIDResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result solver.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, created.ID, result.ID.String())
}

func TestHandler_RoomInvalidID(t *testing.T) {
	h := testHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/not-a-uuid", nil))
	assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
}

func TestHandler_Rooms(t *testing.T) {
	h := testHandler(t)

	// no results yet
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room?limit=zero", nil))
	assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
}

func TestHandler_LiveUnknownRoom(t *testing.T) {
	h := testHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live?room_id=bad", nil))
	assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
}
