package handlers

import (
	"net/http"
	"strings"

	"github.com/ajay-constructions/estimator/internal/session"
)

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		sess := h.store.Create()
		h.writeJSON(w, sess)
	case "GET":
		sessions := h.store.GetAll()
		sessionList := make([]*session.Session, 0, len(sessions))
		for _, sess := range sessions {
			sessionList = append(sessionList, sess)
		}
		h.writeJSON(w, sessionList)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	sessionID, subresource, _ := strings.Cut(rest, "/")

	sess, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	switch subresource {
	case "":
		switch r.Method {
		case "GET":
			h.writeJSON(w, sess)
		case "DELETE":
			h.store.Delete(sessionID)
			w.WriteHeader(http.StatusNoContent)
		default:
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "quotes":
		h.handleQuotes(w, r, sess)
	case "view":
		h.handleView(w, r, sess)
	case "history":
		h.handleHistory(w, r, sess)
	case "qr":
		h.handleQR(w, r, sess)
	default:
		h.writeError(w, "Not found", http.StatusNotFound)
	}
}
