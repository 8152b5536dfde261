package controller

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtcast/server/internal/domain"
	"github.com/courtcast/server/internal/metrics"
	"github.com/courtcast/server/internal/repository/session"
)

type fakeSessionRepo struct {
	sessions map[string]string
}

func (r *fakeSessionRepo) SetSession(_ context.Context, params *session.SetSessionParams) error {
	if r.sessions == nil {
		r.sessions = make(map[string]string)
	}
	r.sessions[params.Token] = params.ViewerId
	return nil
}

func testAngleConfig() domain.AngleConfig {
	return domain.AngleConfig{
		domain.Angle1: {Source: "https://cdn.example.com/match/main.mp4", Label: "Main"},
		domain.Angle2: {Source: "https://cdn.example.com/match/baseline-north.mp4", Label: "Baseline N"},
		domain.Angle3: {Source: "https://cdn.example.com/match/baseline-south.mp4", Label: "Baseline S"},
		domain.Angle4: {Source: "https://cdn.example.com/match/net.mp4", Label: "Net"},
	}
}

func newTestMux(sessionRepo iSessionRepo) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewController(testAngleConfig(), nil, sessionRepo, metrics.New(), logger).GetMux()
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestGetAngles(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/angles", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var angles domain.AngleConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &angles))
	require.Len(t, angles, 4)
	assert.Equal(t, "Main", angles[domain.Angle1].Label)
	assert.Equal(t, "https://cdn.example.com/match/net.mp4", angles[domain.Angle4].Source)
}

func TestCreateSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	rec := httptest.NewRecorder()
	newTestMux(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.NotEmpty(t, resp["viewer_id"])
	assert.Equal(t, resp["viewer_id"], repo.sessions[resp["token"]])
}

func TestCreateSessionWithoutStore(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "player_connected_clients")
}
