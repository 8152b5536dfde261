package controller

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/courtcast/server/internal/repository/session"
)

func (c *controller) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// handleGetAngles exposes the static angle map to the integrator UI.
func (c *controller) handleGetAngles(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, c.angles)
}

// handleCreateSession mints a viewer session token. This is scaffolding
// around the viewer, not part of playback: the player core works the
// same whether or not a session exists.
func (c *controller) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if c.sessionRepo == nil {
		c.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
		return
	}

	token := uuid.NewString()
	viewerId := uuid.NewString()

	if err := c.sessionRepo.SetSession(r.Context(), &session.SetSessionParams{
		Token:    token,
		ViewerId: viewerId,
	}); err != nil {
		c.logger.ErrorContext(r.Context(), "failed to create session", "error", err)
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create session"})
		return
	}

	c.writeJSON(w, http.StatusCreated, map[string]string{
		"token":     token,
		"viewer_id": viewerId,
	})
}
