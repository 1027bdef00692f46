package service

import (
	"errors"
	"fmt"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// Status classifies an import for the caller.
type Status int

const (
	// StatusOK means the upload was processed; the count may be zero.
	StatusOK Status = iota
	// StatusBadInput means the upload could not be read as a workbook.
	StatusBadInput
	// StatusFailed means storage failed while processing the upload.
	StatusFailed
)

// Report is the caller-facing summary of one import.
type Report struct {
	Status  Status
	Message string
}

// NewReport summarizes the result of IngestService.Ingest.
// Only the inserted count is disclosed on success; duplicates and
// rejected rows are not reported individually.
func NewReport(outcome domain.IngestionOutcome, err error) Report {
	switch {
	case err == nil:
		return Report{Status: StatusOK, Message: fmt.Sprintf("Imported %d records", outcome.Inserted)}
	case errors.Is(err, domain.ErrParse):
		return Report{Status: StatusBadInput, Message: "Import failed: " + err.Error()}
	default:
		return Report{Status: StatusFailed, Message: "Import failed: " + err.Error()}
	}
}
