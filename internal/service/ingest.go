package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/repo"
	"github.com/pkordes/rsvp-import/internal/workbook"
)

// Row outcomes reported to the IngestObserver.
const (
	RowInserted  = "inserted"
	RowDuplicate = "duplicate"
	RowFailed    = "failed"
)

// Run results reported to the IngestObserver.
const (
	RunOK          = "ok"
	RunParseError  = "parse_error"
	RunUnavailable = "unavailable"
)

// IngestObserver receives per-row and per-run events, typically to feed
// metrics. Implementations must be safe for concurrent use.
type IngestObserver interface {
	ObserveRow(outcome string)
	ObserveRun(result string, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveRow(string)                {}
func (noopObserver) ObserveRun(string, time.Duration) {}

// IngestService imports survey workbooks into the guests table.
type IngestService struct {
	guests     repo.GuestRepo
	dedup      *Deduplicator
	normalizer *Normalizer
	log        *slog.Logger
	observer   IngestObserver
}

// NewIngestService constructs an IngestService. A nil logger discards
// output and a nil observer ignores events.
func NewIngestService(guests repo.GuestRepo, normalizer *Normalizer, log *slog.Logger, observer IngestObserver) *IngestService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &IngestService{
		guests:     guests,
		dedup:      NewDeduplicator(guests),
		normalizer: normalizer,
		log:        log,
		observer:   observer,
	}
}

// Ingest decodes data as a workbook and stores every row of its first sheet
// that is not already stored, in sheet order, one row at a time.
//
// The whole sheet is read and normalized before the first write, so an
// unreadable upload, or one whose header row matches no mapped label
// (domain.ErrParse), commits nothing.
// Rows whose hash is already stored are skipped. A row the database rejects
// is skipped as well and only lowers the count. A database that cannot be
// reached (domain.ErrUnavailable) or a cancelled ctx ends the run with an
// error and no count; rows committed before that point stay committed.
func (s *IngestService) Ingest(ctx context.Context, data []byte) (domain.IngestionOutcome, error) {
	start := time.Now()
	log := s.log.With(
		"run_id", uuid.NewString(),
		"file_checksum", strconv.FormatUint(xxhash.Sum64(data), 16),
		"bytes", len(data),
	)

	records, err := s.load(ctx, log, data)
	if err != nil {
		s.observer.ObserveRun(RunParseError, time.Since(start))
		log.WarnContext(ctx, "ingest rejected upload", "error", err)
		return domain.IngestionOutcome{}, fmt.Errorf("service.IngestService.Ingest: %w", err)
	}

	out := domain.IngestionOutcome{Rows: len(records)}
	for i, rec := range records {
		outcome, err := s.store(ctx, rec)
		if err != nil {
			s.observer.ObserveRun(RunUnavailable, time.Since(start))
			log.ErrorContext(ctx, "ingest aborted",
				"row", i+1,
				"inserted", out.Inserted,
				"duplicates", out.Duplicates,
				"failed", out.Failed,
				"error", err,
			)
			return domain.IngestionOutcome{}, fmt.Errorf("service.IngestService.Ingest: row %d: %w", i+1, err)
		}

		s.observer.ObserveRow(outcome)
		switch outcome {
		case RowInserted:
			out.Inserted++
		case RowDuplicate:
			out.Duplicates++
		case RowFailed:
			out.Failed++
		}
	}

	s.observer.ObserveRun(RunOK, time.Since(start))
	log.InfoContext(ctx, "ingest finished",
		"rows", out.Rows,
		"inserted", out.Inserted,
		"duplicates", out.Duplicates,
		"failed", out.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Preview decodes and normalizes data exactly as Ingest does but stores
// nothing. Always returns a non-nil slice on success.
func (s *IngestService) Preview(ctx context.Context, data []byte) ([]domain.GuestRecord, error) {
	records, err := s.load(ctx, s.log, data)
	if err != nil {
		return nil, fmt.Errorf("service.IngestService.Preview: %w", err)
	}
	return records, nil
}

// load reads the first sheet of the workbook into normalized records.
func (s *IngestService) load(ctx context.Context, log *slog.Logger, data []byte) ([]domain.GuestRecord, error) {
	sheet, err := workbook.Open(data)
	if err != nil {
		return nil, err
	}
	defer sheet.Close()

	if !s.normalizer.Recognizes(sheet.Headers()) {
		return nil, fmt.Errorf("%w: sheet %q has none of the expected header labels", domain.ErrParse, sheet.Name())
	}
	if missing := s.normalizer.MissingFields(sheet.Headers()); len(missing) > 0 {
		log.WarnContext(ctx, "sheet lacks mapped headers; fields will be left empty",
			"sheet", sheet.Name(),
			"missing", missing,
		)
	}

	records := []domain.GuestRecord{}
	for row, err := range sheet.Rows() {
		if err != nil {
			return nil, err
		}
		records = append(records, s.normalizer.Normalize(row))
	}
	return records, nil
}

// store runs the duplicate check and insert for one record.
// It returns an error only when the run must stop.
func (s *IngestService) store(ctx context.Context, rec domain.GuestRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dup, err := s.dedup.IsDuplicate(ctx, rec.Hash)
	if err != nil {
		if fatal(ctx, err) {
			return "", err
		}
		s.log.DebugContext(ctx, "duplicate check failed; skipping row", "hash", rec.Hash, "error", err)
		return RowFailed, nil
	}
	if dup {
		return RowDuplicate, nil
	}

	if _, err := s.guests.Insert(ctx, rec); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return RowDuplicate, nil
		case fatal(ctx, err):
			return "", err
		default:
			s.log.DebugContext(ctx, "insert failed; skipping row", "hash", rec.Hash, "error", err)
			return RowFailed, nil
		}
	}
	return RowInserted, nil
}

// fatal reports whether err means no further row can be stored.
func fatal(ctx context.Context, err error) bool {
	return errors.Is(err, domain.ErrUnavailable) || ctx.Err() != nil
}
