package workbook

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/vvka-141/labschema/pkg/labschema"
)

// Open loads an .xlsx file into memory.
func Open(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w: %w", err, labschema.ErrWorkbookUnreadable)
	}
	defer f.Close()

	wb, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	wb.Path = path
	return wb, nil
}

// Read loads an .xlsx document from r. Sheets keep their tab order and cells
// hold their formatted text, so booleans read as TRUE/FALSE.
func Read(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %v: %w", err, labschema.ErrWorkbookUnreadable)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %v: %w", name, err, labschema.ErrWorkbookUnreadable)
		}
		wb.Sheets = append(wb.Sheets, NewSheet(name, rows...))
	}
	return wb, nil
}

// CellName converts 0-based row and column indexes to an A1 reference.
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return name
}
