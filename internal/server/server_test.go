package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewledger/crewledger/internal/models"
	"github.com/crewledger/crewledger/internal/service"
	"github.com/crewledger/crewledger/internal/settlement"
	"github.com/crewledger/crewledger/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewSettlementService(store, logger)
	ts := httptest.NewServer(New(store, svc, logger).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthz(t *testing.T) {
	ts := setupTestServer(t)
	var body map[string]string
	resp := getJSON(t, ts.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestTripLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	var trip models.Trip
	resp := postJSON(t, ts.URL+"/v1/trips", map[string]string{
		"name": "Lisbon 2026", "currency": "EUR",
	}, &trip)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, trip.ID)

	var participants []models.Participant
	resp = postJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/participants", map[string]any{
		"names": []string{"Alice", "Bob"},
	}, &participants)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, participants, 2)
	alice, bob := participants[0], participants[1]

	var expense models.Expense
	resp = postJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/expenses", map[string]any{
		"description": "Dinner",
		"amount":      1000,
		"paidBy":      alice.ID,
		"shareType":   "equal",
		"splits": []map[string]any{
			{"participantId": alice.ID},
			{"participantId": bob.ID},
		},
	}, &expense)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var summary settlement.Summary
	resp = getJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/settlement", &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1000), summary.TotalExpenses)
	require.Len(t, summary.Settlements, 1)
	assert.Equal(t, bob.ID, summary.Settlements[0].FromParticipantID)
	assert.Equal(t, alice.ID, summary.Settlements[0].ToParticipantID)
	assert.Equal(t, int64(500), summary.Settlements[0].Amount)

	// Record the suggested payment; the trip should then be settled.
	resp = postJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/settlements", map[string]any{
		"fromParticipantId": bob.ID,
		"toParticipantId":   alice.ID,
		"amount":            500,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = getJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/settlement", &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, summary.Settlements)

	planResp, err := http.Get(ts.URL + "/v1/trips/" + trip.ID + "/settlement/plan")
	require.NoError(t, err)
	defer planResp.Body.Close()
	plan, err := io.ReadAll(planResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(plan), "No payments needed")
}

func TestValidationErrors(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{
			name: "trip without currency",
			path: "/v1/trips",
			body: map[string]any{"name": "x"},
		},
		{
			name: "trip with lowercase currency",
			path: "/v1/trips",
			body: map[string]any{"name": "x", "currency": "eur"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+tt.path, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSelfSettlementRejected(t *testing.T) {
	ts := setupTestServer(t)

	var trip models.Trip
	postJSON(t, ts.URL+"/v1/trips", map[string]string{"name": "x", "currency": "EUR"}, &trip)

	resp := postJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/settlements", map[string]any{
		"fromParticipantId": "p1",
		"toParticipantId":   "p1",
		"amount":            100,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownTripIs404(t *testing.T) {
	ts := setupTestServer(t)
	resp := getJSON(t, ts.URL+"/v1/trips/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, ts.URL+"/v1/trips/nope/settlement", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCorruptSplitDataIs422(t *testing.T) {
	ts := setupTestServer(t)

	var trip models.Trip
	postJSON(t, ts.URL+"/v1/trips", map[string]string{"name": "x", "currency": "EUR"}, &trip)

	var participants []models.Participant
	postJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/participants", map[string]any{
		"names": []string{"Alice", "Bob"},
	}, &participants)

	// Percentages summing to 90: stored fine, rejected at compute time.
	resp := postJSON(t, ts.URL+"/v1/trips/"+trip.ID+"/expenses", map[string]any{
		"description": "bad",
		"amount":      1000,
		"paidBy":      participants[0].ID,
		"shareType":   "percentage",
		"splits": []map[string]any{
			{"participantId": participants[0].ID, "share": 60},
			{"participantId": participants[1].ID, "share": 30},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = getJSON(t, fmt.Sprintf("%s/v1/trips/%s/settlement", ts.URL, trip.ID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
