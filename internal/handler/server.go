// Package handler implements the HTTP handlers for the RSVP import API.
// All handlers are methods on Server. They are split by resource (upload.go,
// guest.go, check.go) but share the same struct and its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// Ingester imports and previews uploaded workbooks.
// Interfaces live here, in the consumer package, so handler tests can inject
// a mock without touching the database or the service layer.
type Ingester interface {
	Ingest(ctx context.Context, data []byte) (domain.IngestionOutcome, error)
	Preview(ctx context.Context, data []byte) ([]domain.GuestRecord, error)
}

// GuestServicer serves read-only views over stored guest records.
type GuestServicer interface {
	List(ctx context.Context, limit int) ([]domain.GuestRecord, error)
	Headcount(ctx context.Context) (domain.Headcount, error)
}

// CheckServicer records and lists venue check-ins.
type CheckServicer interface {
	Create(ctx context.Context, c domain.Check) (domain.Check, error)
	List(ctx context.Context) ([]domain.Check, error)
}

// Server holds the dependencies of every API handler.
type Server struct {
	ingest    Ingester
	guests    GuestServicer
	checks    CheckServicer
	listLimit int
}

// NewServer constructs the Server. listLimit is the page size used by
// GET /api/guests when the request names none.
func NewServer(ingest Ingester, guests GuestServicer, checks CheckServicer, listLimit int) *Server {
	return &Server{ingest: ingest, guests: guests, checks: checks, listLimit: listLimit}
}

// Register mounts every API route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", s.Upload)
		r.Post("/upload/preview", s.PreviewUpload)

		r.Get("/guests", s.ListGuests)
		r.Get("/guests/headcount", s.GetHeadcount)

		r.Get("/checks", s.ListChecks)
		r.Get("/check", s.CreateCheck)
		r.Post("/check", s.CreateCheck)
	})
}
