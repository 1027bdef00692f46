// Package workbook decodes uploaded spreadsheet files into label-keyed rows.
// Only the first sheet of a workbook is read; its first non-blank row holds the headers.
package workbook

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// Sheet is the first sheet of an opened workbook.
type Sheet struct {
	file    *excelize.File
	name    string
	headers []string
	// headerRow is the 1-based row number of the header row; 0 when every
	// row of the sheet is blank.
	headerRow int
}

// Open decodes data as an .xlsx workbook and selects its first sheet by
// position. Every failure wraps domain.ErrParse.
func Open(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("workbook.Open: %w: %v", domain.ErrParse, err)
	}

	names := f.GetSheetList()
	if len(names) == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("workbook.Open: %w: workbook has no sheets", domain.ErrParse)
	}

	s := &Sheet{file: f, name: names[0]}
	if err := s.readHeaders(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

// Name returns the sheet's tab name.
func (s *Sheet) Name() string { return s.name }

// Headers returns the header labels in column order, trimmed of surrounding
// whitespace. An empty sheet has no headers.
func (s *Sheet) Headers() []string {
	out := make([]string, len(s.headers))
	copy(out, s.headers)
	return out
}

// Close releases the workbook's temporary resources.
func (s *Sheet) Close() error {
	return s.file.Close()
}

// Rows returns the data rows of the sheet in order: every row below the
// header row. Rows above it are ignored.
// The sequence is lazy and restartable: each range over it streams the
// sheet again from the top. Blank rows are skipped, and columns missing at
// the end of a short row are reported as "".
// An error yielded by the sequence wraps domain.ErrParse and ends it.
func (s *Sheet) Rows() iter.Seq2[domain.RawRow, error] {
	return func(yield func(domain.RawRow, error) bool) {
		rows, err := s.file.Rows(s.name)
		if err != nil {
			yield(nil, fmt.Errorf("workbook.Sheet.Rows: %w: %v", domain.ErrParse, err))
			return
		}
		defer rows.Close()

		n := 0
		for rows.Next() {
			n++
			if n <= s.headerRow {
				continue
			}
			cols, err := rows.Columns()
			if err != nil {
				yield(nil, fmt.Errorf("workbook.Sheet.Rows: %w: %v", domain.ErrParse, err))
				return
			}
			if isBlank(cols) {
				continue
			}
			if !yield(s.toRawRow(cols), nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(nil, fmt.Errorf("workbook.Sheet.Rows: %w: %v", domain.ErrParse, err))
		}
	}
}

// readHeaders takes the first non-blank row of the sheet as its header row.
// Title or spacer rows above the survey headers are skipped.
func (s *Sheet) readHeaders() error {
	rows, err := s.file.Rows(s.name)
	if err != nil {
		return fmt.Errorf("workbook.Open: %w: %v", domain.ErrParse, err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
		cols, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("workbook.Open: %w: %v", domain.ErrParse, err)
		}
		if isBlank(cols) {
			continue
		}
		s.headerRow = n
		for _, c := range cols {
			s.headers = append(s.headers, strings.TrimSpace(c))
		}
		break
	}
	if err := rows.Error(); err != nil {
		return fmt.Errorf("workbook.Open: %w: %v", domain.ErrParse, err)
	}
	return nil
}

// toRawRow keys cells by header label. Columns without a header are dropped;
// when two columns share a label the leftmost non-empty value wins.
func (s *Sheet) toRawRow(cols []string) domain.RawRow {
	row := make(domain.RawRow, len(s.headers))
	for i, label := range s.headers {
		if label == "" {
			continue
		}
		var v string
		if i < len(cols) {
			v = cols[i]
		}
		if row[label] == "" {
			row[label] = v
		}
	}
	return row
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
