// Package xlsxtest writes small .xlsx fixtures for tests.
package xlsxtest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/vvka-141/labschema/internal/workbook"
)

// Write saves sheets as an .xlsx file in a fresh temp directory and returns its path.
// Empty rows are left unwritten so they read back as blank rows.
func Write(t *testing.T, name string, sheets ...*workbook.Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("Failed to add sheet %q: %v", s.Name, err)
		}

		for r, cells := range s.Rows {
			if len(cells) == 0 {
				continue
			}
			values := make([]interface{}, len(cells))
			for c, v := range cells {
				values[c] = v
			}
			if err := f.SetSheetRow(s.Name, workbook.CellName(r, 0), &values); err != nil {
				t.Fatalf("Failed to write row %d of %q: %v", r, s.Name, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}
