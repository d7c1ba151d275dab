package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ajay-constructions/estimator/internal/models"
	"github.com/ajay-constructions/estimator/internal/payments"
	"github.com/ajay-constructions/estimator/internal/session"
)

// handleQuotes runs one submission: estimation, then best-effort image
// resolution. Estimation failures are surfaced with their cause so the user
// can resubmit; the session's prior quote stays in place.
func (h *Handler) handleQuotes(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.service.Submit(r.Context(), sess, req)
	if err != nil {
		if vErr := req.Validate(); vErr != nil {
			h.writeError(w, "Invalid project request: "+vErr.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Estimation failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.writeJSON(w, quote)
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		View session.View `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if body.View != session.ViewCalculator && body.View != session.ViewInvoice {
		h.writeError(w, "Unknown view: "+string(body.View), http.StatusBadRequest)
		return
	}

	effective := sess.Navigate(body.View)
	h.writeJSON(w, map[string]session.View{"view": effective})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, sess.Recent())
}

// handleQR redirects to the payment QR rendering service for the session's
// consultation payment. An explicit amount query parameter pins the amount.
func (h *Handler) handleQR(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	amount := 0.0
	if raw := r.URL.Query().Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			h.writeError(w, "Invalid amount: "+raw, http.StatusBadRequest)
			return
		}
		amount = parsed
	}

	http.Redirect(w, r, payments.QRURL(h.profile.UPIID, h.profile.BrandName, amount), http.StatusFound)
}
