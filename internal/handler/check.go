package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// CreateCheck handles GET and POST /api/check.
// The check-in is read from the user_id, name and number query parameters
// so a plain link or QR code can record it. Answers are plain text.
func (s *Server) CreateCheck(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	_, err := s.checks.Create(r.Context(), domain.Check{
		UserID: q.Get("user_id"),
		Name:   q.Get("name"),
		Number: q.Get("number"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeText(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		slog.ErrorContext(r.Context(), "check-in failed", "error", err)
		writeText(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	writeText(w, http.StatusCreated, "Created")
}

// ListChecks handles GET /api/checks.
func (s *Server) ListChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := s.checks.List(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, checks)
}
