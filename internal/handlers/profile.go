package handlers

import (
	"net/http"

	"github.com/ajay-constructions/estimator/internal/models"
)

// HandleProfile serves the form metadata the presentation layer needs: the
// business profile, the quotable categories, and the grade ordering.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, map[string]any{
		"profile":    h.profile,
		"categories": models.Categories(),
		"grades": []models.Grade{
			models.GradeBudget, models.GradeStandard,
			models.GradePremium, models.GradeLuxury,
		},
	})
}
