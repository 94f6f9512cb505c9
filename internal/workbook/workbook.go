package workbook

import (
	"bytes"
	"strings"
)

// Sheet is a named grid of cell text. Row and column indexes are 0-based.
type Sheet struct {
	Name string
	Rows [][]string
}

// NewSheet creates a sheet from rows of cell text.
func NewSheet(name string, rows ...[]string) *Sheet {
	return &Sheet{Name: name, Rows: rows}
}

// RowCount returns the number of physical rows, including empty ones.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// Row returns the cells of row i, or nil when i is out of range.
func (s *Sheet) Row(i int) []string {
	if i < 0 || i >= len(s.Rows) {
		return nil
	}
	return s.Rows[i]
}

// Cell returns the text at (row, col), or "" when out of range.
func (s *Sheet) Cell(row, col int) string {
	r := s.Row(row)
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// IsEmptyRow reports whether every cell of row i is blank.
// Rows beyond the end of the sheet are empty.
func (s *Sheet) IsEmptyRow(i int) bool {
	for _, c := range s.Row(i) {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the sheet has no non-blank cell.
func (s *Sheet) IsEmpty() bool {
	for i := range s.Rows {
		if !s.IsEmptyRow(i) {
			return false
		}
	}
	return true
}

// Workbook is an ordered collection of sheets.
type Workbook struct {
	// Path is the file the workbook was loaded from, if any.
	Path   string
	Sheets []*Sheet
}

// New creates a workbook from sheets, keeping their order.
func New(sheets ...*Sheet) *Workbook {
	return &Workbook{Sheets: sheets}
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Filter returns a workbook holding only the named sheets, in workbook order.
// An empty list keeps every sheet.
func (w *Workbook) Filter(names []string) *Workbook {
	if len(names) == 0 {
		return w
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	out := &Workbook{Path: w.Path}
	for _, s := range w.Sheets {
		if keep[s.Name] {
			out.Sheets = append(out.Sheets, s)
		}
	}
	return out
}

// Canonical renders the cell content as text: one "# name" line per sheet,
// then one tab-separated line per row with cells trimmed and trailing blanks
// dropped. Two workbooks with the same cell text render identically,
// whatever their file encoding.
func (w *Workbook) Canonical() []byte {
	var buf bytes.Buffer
	for _, s := range w.Sheets {
		buf.WriteString("# ")
		buf.WriteString(s.Name)
		buf.WriteByte('\n')

		last := len(s.Rows) - 1
		for last >= 0 && s.IsEmptyRow(last) {
			last--
		}
		for i := 0; i <= last; i++ {
			cells := s.Rows[i]
			end := len(cells)
			for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
				end--
			}
			for j := 0; j < end; j++ {
				if j > 0 {
					buf.WriteByte('\t')
				}
				buf.WriteString(strings.TrimSpace(cells[j]))
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
