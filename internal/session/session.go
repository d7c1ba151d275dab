package session

import (
	"time"

	"github.com/ajay-constructions/estimator/internal/models"
)

// View identifies which of the two portal views a session is showing.
type View string

const (
	ViewCalculator View = "calculator"
	ViewInvoice    View = "invoice"
)

// displayHistorySize bounds how many past quotes are surfaced to the
// presentation layer. The underlying history itself is never truncated.
const displayHistorySize = 5

// Session is the quotation state owned by one interactive session: the
// current quote, the append-only history of past quotes, and the active
// view. It is created at session start and discarded at session end.
type Session struct {
	ID        string        `json:"id"`
	View      View          `json:"view"`
	Current   *models.Quote `json:"current,omitempty"`
	CreatedAt time.Time     `json:"created_at"`

	history []models.Quote
}

// Navigate switches the active view. Navigating to the invoice with no
// current quote redirects straight back to the calculator. The effective
// view is returned.
func (s *Session) Navigate(view View) View {
	if view == ViewInvoice && s.Current == nil {
		s.View = ViewCalculator
		return s.View
	}
	s.View = view
	return s.View
}

// Record makes quote the session's current quote and appends it to the
// history. History is append-only within a session.
func (s *Session) Record(quote models.Quote) {
	s.Current = &quote
	s.history = append(s.history, quote)
}

// HistoryLen returns the full (untruncated) number of recorded quotes.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// Recent returns up to the last 5 recorded quotes, most recent first.
func (s *Session) Recent() []models.Quote {
	n := len(s.history)
	count := n
	if count > displayHistorySize {
		count = displayHistorySize
	}
	recent := make([]models.Quote, 0, count)
	for i := n - 1; i >= n-count; i-- {
		recent = append(recent, s.history[i])
	}
	return recent
}
