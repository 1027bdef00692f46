package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rsvp-import/internal/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"https://rsvp.example.com"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
	req.Header.Set("Origin", "https://rsvp.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://rsvp.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHandler_Wildcard(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"*"})(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req.Header.Set("Origin", "https://anywhere.example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

// Browsers send a preflight before a POST whose Content-Type is not a simple
// one. Request header names arrive lowercased.
func TestCORSHandler_PreflightUpload(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"*"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/upload", nil)
	req.Header.Set("Origin", "https://rsvp.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for preflight, got %d", rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSHandler_PreflightDeleteRefused(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"*"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/guests", nil)
	req.Header.Set("Origin", "https://rsvp.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHandler_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"https://rsvp.example.com"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
