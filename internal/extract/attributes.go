package extract

import (
	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/internal/validate"
	"github.com/vvka-141/labschema/internal/workbook"
	"github.com/vvka-141/labschema/pkg/labschema"
)

// attributes reads the entity's own fields from the header row and the single
// value row of the block. The code is read first so later fields can be
// checked against it.
func (sc *scope) attributes() *labschema.EntityRecord {
	b := sc.block
	rec := labschema.NewEntityRecord(b.category)
	headerRow := b.start + labschema.HeaderRowOffset
	valueRow := b.start + labschema.ValueRowOffset

	for _, p := range sc.run.x.rules.Attributes(b.category) {
		col := findColumn(sc.sheet, b, headerRow, p)
		if col < 0 {
			sc.missingHeader(headerRow, p)
			continue
		}

		value, diags := validate.Cell(b.cell(sc.sheet, valueRow, col), p, rec.Code)
		if p.Key == labschema.KeyCode {
			sc.code = value.Text
		}
		sc.reportAt(valueRow, col, diags)
		if value.IsEmpty() && !p.AllowEmpty {
			sc.missingValue(valueRow, col, p)
		}
		setAttribute(rec, p.Key, value)
	}

	if a, ok := rec.Attributes.(*labschema.PropertyTypeAttributes); ok {
		p, _ := sc.run.x.rules.Policy(b.category, labschema.KeyVocabularyCode)
		col := findColumn(sc.sheet, b, headerRow, p)
		a.VocabularyCode = sc.checkVocabulary(valueRow, col, p.Header, a.DataType, a.VocabularyCode)
	}
	return rec
}

// findColumn returns the 0-based column whose header in row matches p, or -1.
func findColumn(s *workbook.Sheet, b block, row int, p rules.Policy) int {
	if row > b.end {
		return -1
	}
	for col, cell := range s.Row(row) {
		if p.MatchesHeader(cell) {
			return col
		}
	}
	return -1
}

func (sc *scope) missingHeader(row int, p rules.Policy) {
	sev := labschema.SeverityError
	if p.Optional {
		sev = labschema.SeverityWarning
	}
	sc.report(labschema.Diagnostic{
		Severity: sev,
		Row:      row + 1,
		Field:    p.Header,
		Message:  "header not found",
	})
}

func (sc *scope) missingValue(row, col int, p rules.Policy) {
	sc.report(labschema.Diagnostic{
		Severity: labschema.SeverityError,
		Row:      row + 1,
		Column:   col + 1,
		Field:    p.Header,
		Message:  "missing value",
	})
}

// checkVocabulary enforces that a vocabulary code is given exactly when the
// data type is CONTROLLEDVOCABULARY. It returns the vocabulary code to keep.
func (sc *scope) checkVocabulary(row, col int, field, dataType, vocabulary string) string {
	d := labschema.Diagnostic{Row: row + 1, Field: field}
	if col >= 0 {
		d.Column = col + 1
	}
	switch {
	case dataType == string(labschema.DataTypeControlledVocabulary) && vocabulary == "":
		d.Severity = labschema.SeverityError
		d.Message = "required for data type CONTROLLEDVOCABULARY"
		sc.report(d)
	case dataType != string(labschema.DataTypeControlledVocabulary) && vocabulary != "":
		d.Severity = labschema.SeverityWarning
		d.Value = vocabulary
		d.Message = "ignored for data type " + dataTypeName(dataType)
		sc.report(d)
		return ""
	}
	return vocabulary
}

func dataTypeName(dt string) string {
	if dt == "" {
		return "(none)"
	}
	return dt
}

// setAttribute stores an entity-level value under its output key.
func setAttribute(rec *labschema.EntityRecord, key string, v labschema.Value) {
	switch key {
	case labschema.KeyCode:
		rec.Code = v.Text
		return
	case labschema.KeyDescription:
		rec.Description = v.Text
		return
	}

	switch a := rec.Attributes.(type) {
	case *labschema.ObjectAttributes:
		switch key {
		case labschema.KeyValidationScript:
			a.ValidationScript = v.Text
		case labschema.KeyGeneratedCodePrefix:
			a.GeneratedCodePrefix = v.Text
		case labschema.KeyAutoGeneratedCodes:
			a.AutoGeneratedCodes = v.Truth()
		}
	case *labschema.CollectionAttributes:
		if key == labschema.KeyValidationScript {
			a.ValidationScript = v.Text
		}
	case *labschema.DatasetAttributes:
		if key == labschema.KeyValidationScript {
			a.ValidationScript = v.Text
		}
	case *labschema.PropertyTypeAttributes:
		switch key {
		case labschema.KeyPropertyLabel:
			a.PropertyLabel = v.Text
		case labschema.KeyDataType:
			a.DataType = v.Text
		case labschema.KeyVocabularyCode:
			a.VocabularyCode = v.Text
		}
	case *labschema.VocabularyAttributes:
		if key == labschema.KeyURLTemplate {
			a.URLTemplate = v.Text
		}
	}
}
