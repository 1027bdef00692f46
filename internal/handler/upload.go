package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/service"
)

// uploadField is the multipart form field that carries the workbook.
const uploadField = "file"

// Upload handles POST /api/upload.
// The body is the workbook itself, or a multipart form with the workbook in
// the "file" field. The answer is a one-line plain-text report.
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		writeUploadError(w, err)
		return
	}

	rep := service.NewReport(s.ingest.Ingest(r.Context(), data))
	writeText(w, reportStatus(rep.Status), rep.Message)
}

// PreviewUpload handles POST /api/upload/preview.
// It returns the normalized records as JSON and stores nothing.
func (s *Server) PreviewUpload(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		if isTooLarge(err) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "too_large", "upload exceeds the size limit")
			return
		}
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	records, err := s.ingest.Preview(r.Context(), data)
	if err != nil {
		if errors.Is(err, domain.ErrParse) {
			writeError(w, r, http.StatusBadRequest, "parse_error", err.Error())
			return
		}
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}

// readUpload returns the workbook bytes of a raw or multipart request body.
func readUpload(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return data, nil
	}

	f, _, err := r.FormFile(uploadField)
	if err != nil {
		return nil, fmt.Errorf("form field %q: %w", uploadField, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read form field %q: %w", uploadField, err)
	}
	return data, nil
}

func writeUploadError(w http.ResponseWriter, err error) {
	if isTooLarge(err) {
		writeText(w, http.StatusRequestEntityTooLarge, "Import failed: upload exceeds the size limit")
		return
	}
	writeText(w, http.StatusBadRequest, "Import failed: "+err.Error())
}

func isTooLarge(err error) bool {
	var tooBig *http.MaxBytesError
	return errors.As(err, &tooBig)
}

func reportStatus(s service.Status) int {
	switch s {
	case service.StatusOK:
		return http.StatusOK
	case service.StatusBadInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
