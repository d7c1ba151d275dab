package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ajay-constructions/estimator/internal/config"
	"github.com/ajay-constructions/estimator/internal/session"
)

type Handler struct {
	store   *session.Store
	service *session.Service
	profile config.Profile
}

func New(store *session.Store, service *session.Service, profile config.Profile) *Handler {
	return &Handler{
		store:   store,
		service: service,
		profile: profile,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*session.Session, bool) {
	sess, exists := h.store.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}
