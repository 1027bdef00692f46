package handler_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/handler"
)

// Hand-written test doubles. Set only the method fields a test needs.

type mockIngester struct {
	ingest  func(ctx context.Context, data []byte) (domain.IngestionOutcome, error)
	preview func(ctx context.Context, data []byte) ([]domain.GuestRecord, error)
}

func (m *mockIngester) Ingest(ctx context.Context, data []byte) (domain.IngestionOutcome, error) {
	return m.ingest(ctx, data)
}
func (m *mockIngester) Preview(ctx context.Context, data []byte) ([]domain.GuestRecord, error) {
	return m.preview(ctx, data)
}

type mockGuestServicer struct {
	list      func(ctx context.Context, limit int) ([]domain.GuestRecord, error)
	headcount func(ctx context.Context) (domain.Headcount, error)
}

func (m *mockGuestServicer) List(ctx context.Context, limit int) ([]domain.GuestRecord, error) {
	return m.list(ctx, limit)
}
func (m *mockGuestServicer) Headcount(ctx context.Context) (domain.Headcount, error) {
	return m.headcount(ctx)
}

type mockCheckServicer struct {
	create func(ctx context.Context, c domain.Check) (domain.Check, error)
	list   func(ctx context.Context) ([]domain.Check, error)
}

func (m *mockCheckServicer) Create(ctx context.Context, c domain.Check) (domain.Check, error) {
	return m.create(ctx, c)
}
func (m *mockCheckServicer) List(ctx context.Context) ([]domain.Check, error) {
	return m.list(ctx)
}

var (
	_ handler.Ingester      = (*mockIngester)(nil)
	_ handler.GuestServicer = (*mockGuestServicer)(nil)
	_ handler.CheckServicer = (*mockCheckServicer)(nil)
)

// newHTTPHandler wires a Server into a chi router the same way main.go does.
// Nil dependencies are replaced by empty mocks.
func newHTTPHandler(ing handler.Ingester, guests handler.GuestServicer, checks handler.CheckServicer) http.Handler {
	if ing == nil {
		ing = &mockIngester{}
	}
	if guests == nil {
		guests = &mockGuestServicer{}
	}
	if checks == nil {
		checks = &mockCheckServicer{}
	}
	r := chi.NewRouter()
	handler.NewServer(ing, guests, checks, 3).Register(r)
	return r
}
