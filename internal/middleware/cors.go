// Package middleware holds the HTTP middleware shared by every route of the
// RSVP import API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that answers cross-origin requests from
// allowedOrigins. A single "*" entry allows any origin; the upload page is a
// static file that may be opened from anywhere.
//
// The API only reads and creates, so GET and POST are the only methods offered.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	})
	return c.Handler
}
