package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrParse is returned when an upload is not a readable workbook, has no
// sheets, or its first sheet cannot be enumerated.
// Handlers should map this to HTTP 400.
var ErrParse = errors.New("parse error")

// ErrUnavailable is returned by repo functions when the database cannot be
// reached at all, as opposed to rejecting a single statement.
// An ingestion run that sees it stops immediately.
var ErrUnavailable = errors.New("storage unavailable")

// ErrDuplicate is returned by GuestRepo.Insert when a record with the same
// non-empty hash already exists. It is an expected outcome, not a failure.
var ErrDuplicate = errors.New("duplicate hash")
