package extract

import (
	"strings"

	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/internal/workbook"
	"github.com/vvka-141/labschema/pkg/labschema"
)

// minHeaderMatches is how many known attribute headers a row needs before it
// is taken for the header row of a block.
const minHeaderMatches = 2

// block is a row range of one sheet holding a single entity.
// start is the marker row and end the last non-empty row, both 0-based and inclusive.
// resumed lists rows that continue the block after a terminator-length gap.
type block struct {
	category labschema.Category
	start    int
	end      int
	resumed  []int
}

// cell returns the text at (row, col) when row lies inside the block.
func (b block) cell(s *workbook.Sheet, row, col int) string {
	if row < b.start || row > b.end || col < 0 {
		return ""
	}
	return s.Cell(row, col)
}

// headerSet holds the exact attribute header spellings of a rule table.
type headerSet struct {
	all  map[string]bool
	code map[string]bool
}

func newHeaderSet(t *rules.Table) headerSet {
	hs := headerSet{all: make(map[string]bool), code: make(map[string]bool)}
	for _, c := range t.Categories() {
		for _, p := range t.Attributes(c) {
			for _, h := range p.Headers() {
				h = strings.TrimSpace(h)
				hs.all[h] = true
				if p.Key == labschema.KeyCode {
					hs.code[h] = true
				}
			}
		}
	}
	return hs
}

// isHeaderRow reports whether row names a code column and at least one
// other attribute column. Cells must match a header exactly, so data such as
// a property coded "CODE" is not mistaken for a header.
func (hs headerSet) isHeaderRow(s *workbook.Sheet, row int) bool {
	seen := make(map[string]bool)
	hasCode := false
	for _, cell := range s.Row(row) {
		cell = strings.TrimSpace(cell)
		if !hs.all[cell] || seen[cell] {
			continue
		}
		seen[cell] = true
		if hs.code[cell] {
			hasCode = true
		}
	}
	return hasCode && len(seen) >= minHeaderMatches
}

// scanBlocks finds every block of a sheet in row order.
//
// While scanning, rows whose first cell is not a marker are skipped. Such a
// row followed by an attribute header row is a block with an unrecognized
// marker, and scanning stops with a *BlockError.
//
// Inside a block, a non-empty row extends the block unless it starts a new
// block and is preceded by at least BlockTerminatorRun empty rows. Shorter
// runs, and runs followed by ordinary content, stay part of the block.
func scanBlocks(s *workbook.Sheet, headers headerSet, logger labschema.Logger) ([]block, error) {
	var blocks []block
	n := s.RowCount()

	for i := 0; i < n; {
		first := strings.TrimSpace(s.Cell(i, 0))
		category, ok := labschema.ParseCategory(first)
		if !ok {
			if first != "" && headers.isHeaderRow(s, i+1) {
				return nil, unknownMarker(s, i, first)
			}
			i++
			continue
		}

		b := block{category: category, start: i, end: i}
		for j := i + 1; j < n; j++ {
			if s.IsEmptyRow(j) {
				continue
			}
			if j-b.end-1 >= labschema.BlockTerminatorRun {
				if startsBlock(s, headers, j) {
					break
				}
				b.resumed = append(b.resumed, j)
			}
			b.end = j
		}

		logger.Verbose("%s: %s block at rows %d-%d", s.Name, category, b.start+1, b.end+1)
		blocks = append(blocks, b)
		i = b.end + 1
	}

	if len(blocks) > 0 {
		logger.Verbose("%s: scan complete, %d block(s)", s.Name, len(blocks))
	}
	return blocks, nil
}

// startsBlock reports whether row is a marker row or looks like one: a
// non-empty first cell above an attribute header row.
func startsBlock(s *workbook.Sheet, headers headerSet, row int) bool {
	if isMarkerRow(s, row) {
		return true
	}
	return strings.TrimSpace(s.Cell(row, 0)) != "" && headers.isHeaderRow(s, row+1)
}

func isMarkerRow(s *workbook.Sheet, row int) bool {
	_, ok := labschema.ParseCategory(s.Cell(row, 0))
	return ok
}

func unknownMarker(s *workbook.Sheet, row int, marker string) *BlockError {
	names := make([]string, 0, len(labschema.Markers()))
	for _, m := range labschema.Markers() {
		names = append(names, string(m))
	}
	return &BlockError{
		Sheet:   s.Name,
		Row:     row + 1,
		Cell:    workbook.CellName(row, 0),
		Marker:  marker,
		Message: "block starts with an unrecognized category marker",
		Hint:    "The first cell of a block must be one of: " + strings.Join(names, ", "),
	}
}
