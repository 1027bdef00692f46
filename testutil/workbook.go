package testutil

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet for NewWorkbookSheets: a tab name and its rows,
// one []string per spreadsheet row starting at A1. An empty []string leaves
// that row blank.
type Sheet struct {
	Name string
	Rows [][]string
}

// NewWorkbook builds an in-memory .xlsx file whose first sheet, "Sheet1",
// holds rows. Extra sheets, if any, are appended after the first and stay empty.
func NewWorkbook(t *testing.T, rows [][]string, extraSheets ...string) []byte {
	t.Helper()

	sheets := []Sheet{{Name: "Sheet1", Rows: rows}}
	for _, name := range extraSheets {
		sheets = append(sheets, Sheet{Name: name})
	}
	return NewWorkbookSheets(t, sheets...)
}

// NewWorkbookSheets builds an in-memory .xlsx file with the given sheets in
// order. The first sheet replaces excelize's default "Sheet1".
func NewWorkbookSheets(t *testing.T, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if sh.Name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", sh.Name); err != nil {
					t.Fatalf("testutil.NewWorkbookSheets: rename first sheet: %v", err)
				}
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			t.Fatalf("testutil.NewWorkbookSheets: new sheet %q: %v", sh.Name, err)
		}

		for r, row := range sh.Rows {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("testutil.NewWorkbookSheets: cell name: %v", err)
			}
			vals := row
			if err := f.SetSheetRow(sh.Name, cell, &vals); err != nil {
				t.Fatalf("testutil.NewWorkbookSheets: %s row %d: %v", sh.Name, r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("testutil.NewWorkbookSheets: write: %v", err)
	}
	return buf.Bytes()
}
