// Package openapi embeds the OpenAPI document describing the HTTP API so the
// server can publish it at /openapi.yaml.
package openapi

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var Document []byte

// Handler serves Document as YAML.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(Document)
	})
}
