package extract

import (
	"strings"

	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/internal/validate"
	"github.com/vvka-141/labschema/pkg/labschema"
)

// column is a sub-table policy and the 0-based column it was found in, or -1.
type column struct {
	policy rules.Policy
	index  int
}

// children reads the properties or terms table that follows the attribute
// rows. Each data row becomes one child keyed by its code, in row order.
// A block that ends at its value row has no table, and a table without a
// code column is reported once and skipped.
func (sc *scope) children(rec *labschema.EntityRecord) {
	b := sc.block
	headerRow := b.start + labschema.ChildHeaderRowOffset
	policies := sc.run.x.rules.Children(b.category)
	if len(policies) == 0 || headerRow > b.end {
		return
	}

	columns := make([]column, len(policies))
	for i, p := range policies {
		columns[i] = column{policy: p, index: findColumn(sc.sheet, b, headerRow, p)}
		if columns[i].index >= 0 {
			continue
		}
		if p.Key == labschema.KeyCode {
			sc.report(labschema.Diagnostic{
				Severity: labschema.SeverityError,
				Row:      headerRow + 1,
				Field:    p.Header,
				Message:  "header not found; the table has no code column and was skipped",
			})
			return
		}
		sc.missingHeader(headerRow, p)
	}

	for row := b.start + labschema.ChildDataRowOffset; row <= b.end; row++ {
		if sc.sheet.IsEmptyRow(row) {
			continue
		}
		if first := strings.TrimSpace(sc.sheet.Cell(row, 0)); isMarkerRow(sc.sheet, row) {
			sc.report(labschema.Diagnostic{
				Severity: labschema.SeverityWarning,
				Row:      row + 1,
				Column:   1,
				Value:    first,
				Message:  "category marker inside a table; blocks must be separated by two empty rows",
			})
			continue
		}
		sc.childRow(rec, row, columns)
	}
}

// childRow validates one data row and stores it in rec.
func (sc *scope) childRow(rec *labschema.EntityRecord, row int, columns []column) {
	values := make(map[string]labschema.Value, len(columns))
	var code string
	vocabCol := -1
	var vocabField string

	for _, c := range columns {
		raw := ""
		if c.index >= 0 {
			raw = sc.block.cell(sc.sheet, row, c.index)
		}
		value, diags := validate.Cell(raw, c.policy, code)

		if c.policy.Key == labschema.KeyCode {
			if value.IsEmpty() {
				sc.report(labschema.Diagnostic{
					Severity: labschema.SeverityError,
					Row:      row + 1,
					Column:   c.index + 1,
					Field:    c.policy.Header,
					Message:  "row has no code and was skipped",
				})
				return
			}
			code = value.Text
		}
		if c.policy.Key == labschema.KeyVocabularyCode {
			vocabCol, vocabField = c.index, c.policy.Header
		}

		if c.index >= 0 {
			sc.reportAt(row, c.index, diags)
			if value.IsEmpty() && !c.policy.AllowEmpty {
				sc.missingValue(row, c.index, c.policy)
			}
		}
		values[c.policy.Key] = value
	}

	switch {
	case rec.Properties != nil:
		p := newPropertyAssignment(values)
		p.VocabularyCode = sc.checkVocabulary(row, vocabCol, vocabField, p.DataType, p.VocabularyCode)
		if rec.Properties.Put(p.Code, p) {
			sc.duplicateChild(row, code)
		}
	case rec.Terms != nil:
		if rec.Terms.Put(code, newVocabularyTerm(values)) {
			sc.duplicateChild(row, code)
		}
	}
}

func (sc *scope) duplicateChild(row int, code string) {
	sc.report(labschema.Diagnostic{
		Severity: labschema.SeverityWarning,
		Row:      row + 1,
		Value:    code,
		Message:  "duplicate code; this row replaces the earlier one",
	})
}

func newPropertyAssignment(v map[string]labschema.Value) *labschema.PropertyAssignment {
	return &labschema.PropertyAssignment{
		Code:            v[labschema.KeyCode].Text,
		Description:     v[labschema.KeyDescription].Text,
		Mandatory:       v[labschema.KeyMandatory].Truth(),
		ShowInEditViews: v[labschema.KeyShowInEditViews].Truth(),
		Section:         v[labschema.KeySection].Text,
		PropertyLabel:   v[labschema.KeyPropertyLabel].Text,
		DataType:        v[labschema.KeyDataType].Text,
		VocabularyCode:  v[labschema.KeyVocabularyCode].Text,
	}
}

func newVocabularyTerm(v map[string]labschema.Value) *labschema.VocabularyTerm {
	return &labschema.VocabularyTerm{
		Code:        v[labschema.KeyCode].Text,
		Description: v[labschema.KeyDescription].Text,
		URLTemplate: v[labschema.KeyURLTemplate].Text,
		Label:       v[labschema.KeyLabel].Text,
		Official:    v[labschema.KeyOfficial].Truth(),
	}
}
