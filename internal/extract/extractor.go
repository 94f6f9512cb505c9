package extract

import (
	"fmt"
	"strings"

	"github.com/vvka-141/labschema/internal/checksum"
	"github.com/vvka-141/labschema/internal/logging"
	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/internal/workbook"
	"github.com/vvka-141/labschema/pkg/labschema"
)

// Extractor runs block extraction over workbooks with a fixed rule table.
// It holds no per-run state and may be shared between goroutines.
type Extractor struct {
	rules   *rules.Table
	headers headerSet
	logger  labschema.Logger
}

// New creates an Extractor. A nil table is an error; a nil logger is
// replaced by one that discards everything.
func New(table *rules.Table, logger labschema.Logger) (*Extractor, error) {
	if table == nil {
		return nil, fmt.Errorf("rule table is required: %w", labschema.ErrInvalidRules)
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Extractor{rules: table, headers: newHeaderSet(table), logger: logger}, nil
}

// Run extracts every sheet of wb in workbook order.
//
// Field problems are logged and collected in Result.Diagnostics. The only
// error returned is a *BlockError for a block that cannot be classified.
func (x *Extractor) Run(wb *workbook.Workbook) (*labschema.Result, error) {
	r := &run{x: x, result: labschema.NewResult()}

	sum := checksum.New().CalculateNormalized(wb.Canonical())
	r.result.Source = labschema.Source{
		Path:     wb.Path,
		Checksum: sum,
		ID:       checksum.Identity(sum),
	}

	for _, s := range wb.Sheets {
		if err := r.sheet(s); err != nil {
			return nil, err
		}
	}

	x.logger.Verbose("extracted %d sheet(s) with %d error(s) and %d warning(s)",
		r.result.Sheets.Len(),
		r.result.Diagnostics.Count(labschema.SeverityError),
		r.result.Diagnostics.Count(labschema.SeverityWarning))
	return r.result, nil
}

// run carries the state of one Extractor.Run call.
type run struct {
	x      *Extractor
	result *labschema.Result
}

func (r *run) sheet(s *workbook.Sheet) error {
	if s.IsEmpty() {
		r.x.logger.Verbose("%s: empty sheet skipped", s.Name)
		return nil
	}

	blocks, err := scanBlocks(s, r.x.headers, r.x.logger)
	if err != nil {
		return err
	}

	name := SheetName(s.Name)
	for _, b := range blocks {
		scope := &scope{run: r, sheet: s, block: b}
		rec := scope.attributes()
		scope.resumed()
		scope.children(rec)
		if rec.Code == "" {
			scope.report(labschema.Diagnostic{
				Severity: labschema.SeverityError,
				Row:      b.start + 1,
				Message:  "block has no code and was skipped",
			})
			continue
		}
		r.add(name, rec)
	}
	return nil
}

// scope is one block being extracted.
type scope struct {
	run   *run
	sheet *workbook.Sheet
	block block
	code  string
}

// report completes d with the block's location and records it.
func (sc *scope) report(d labschema.Diagnostic) {
	d.Sheet = sc.sheet.Name
	if d.Category == "" {
		d.Category = sc.block.category
	}
	if d.Entity == "" {
		d.Entity = sc.code
	}
	if d.Row > 0 && d.Column > 0 && d.Cell == "" {
		d.Cell = workbook.CellName(d.Row-1, d.Column-1)
	}

	sc.run.result.Diagnostics = append(sc.run.result.Diagnostics, d)
	switch d.Severity {
	case labschema.SeverityError:
		sc.run.x.logger.Error("%s", d)
	default:
		sc.run.x.logger.Warn("%s", d)
	}
}

// resumed warns about rows that continue the block after a run of empty
// rows long enough to end it.
func (sc *scope) resumed() {
	for _, row := range sc.block.resumed {
		sc.report(labschema.Diagnostic{
			Severity: labschema.SeverityWarning,
			Row:      row + 1,
			Column:   1,
			Value:    strings.TrimSpace(sc.sheet.Cell(row, 0)),
			Message:  "row follows two or more empty rows and was read as part of the block",
		})
	}
}

// reportAt records validator diagnostics for the cell at 0-based (row, col).
func (sc *scope) reportAt(row, col int, diags []labschema.Diagnostic) {
	for _, d := range diags {
		d.Row = row + 1
		d.Column = col + 1
		sc.report(d)
	}
}
