package handler

import (
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// ListGuests handles GET /api/guests.
// Supports ?limit= (default from configuration, max 100), newest first.
func (s *Server) ListGuests(w http.ResponseWriter, r *http.Request) {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "limit must be an integer")
		return
	}

	guests, err := s.guests.List(r.Context(), domain.NewListLimit(limit, s.listLimit))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, guests)
}

// GetHeadcount handles GET /api/guests/headcount.
func (s *Server) GetHeadcount(w http.ResponseWriter, r *http.Request) {
	h, err := s.guests.Headcount(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, h)
}
