package extract

import (
	"fmt"

	"github.com/vvka-141/labschema/pkg/labschema"
)

// BlockError is a fatal problem with the block structure of a sheet.
// It wraps labschema.ErrUnknownCategory.
type BlockError struct {
	Sheet   string // Sheet name as written in the workbook
	Row     int    // 1-based row number (0 if unknown)
	Cell    string // A1 reference of the offending cell
	Marker  string // Text found where a category marker was expected
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *BlockError) Error() string {
	location := e.Sheet
	switch {
	case e.Cell != "":
		location = fmt.Sprintf("%s!%s", e.Sheet, e.Cell)
	case e.Row > 0:
		location = fmt.Sprintf("%s (row %d)", e.Sheet, e.Row)
	}

	msg := fmt.Sprintf("block error in %s: %s", location, e.Message)
	if e.Marker != "" {
		msg = fmt.Sprintf("block error in %s [marker: %q]: %s", location, e.Marker, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

func (e *BlockError) Unwrap() error {
	return labschema.ErrUnknownCategory
}
