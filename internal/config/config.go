// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]; the upload page is usually served from elsewhere.
	// Set CORS_ORIGINS to a comma-separated list to restrict it.
	CORSOrigins []string

	// MaxUploadBytes caps request bodies. Defaults to 10 MiB.
	MaxUploadBytes int64

	// HeaderMapping maps record fields to sheet header labels. It starts from
	// domain.DefaultHeaderMapping; HEADER_MAPPING_FILE may override entries.
	HeaderMapping domain.HeaderMapping

	// ListDefaultLimit is the page size of GET /api/guests when no limit is
	// given. Defaults to 3.
	ListDefaultLimit int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// describing the first malformed one.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil || maxUpload <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be a positive integer, got %q", os.Getenv("MAX_UPLOAD_BYTES"))
	}
	cfg.MaxUploadBytes = maxUpload

	limit, err := strconv.Atoi(getEnv("LIST_DEFAULT_LIMIT", "3"))
	if err != nil || limit < 1 || limit > domain.MaxListLimit {
		return Config{}, fmt.Errorf("LIST_DEFAULT_LIMIT must be between 1 and %d, got %q", domain.MaxListLimit, os.Getenv("LIST_DEFAULT_LIMIT"))
	}
	cfg.ListDefaultLimit = limit

	mapping, err := loadHeaderMapping(os.Getenv("HEADER_MAPPING_FILE"))
	if err != nil {
		return Config{}, err
	}
	cfg.HeaderMapping = mapping

	return cfg, nil
}

// loadHeaderMapping merges the YAML file at path, if any, over the default
// mapping. The file is a flat map of field name to header label:
//
//	name: "Full name"
//	hash: "Response ID"
func loadHeaderMapping(path string) (domain.HeaderMapping, error) {
	mapping := domain.DefaultHeaderMapping()
	if path == "" {
		return mapping, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.loadHeaderMapping: %w", err)
	}
	var override domain.HeaderMapping
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("config.loadHeaderMapping: %s: %w", path, err)
	}

	mapping = mapping.Merge(override)
	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("config.loadHeaderMapping: %s: %w", path, err)
	}
	return mapping, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
