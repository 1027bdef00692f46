package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that caps request bodies at
// limit bytes.
//
// A request whose Content-Length already exceeds limit gets 413 without the
// next handler running. Otherwise the body is wrapped in http.MaxBytesReader,
// so a handler reading past limit sees *http.MaxBytesError.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
