package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/labschema/internal/logging"
	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/internal/workbook"
	"github.com/vvka-141/labschema/pkg/labschema"
)

var (
	objectHeaders   = []string{"Code", "Description", "Validation script", "Generated code prefix", "Auto generate codes"}
	propertyHeaders = []string{"Code", "Description", "Mandatory", "Show in edit views", "Section", "Property label", "Data type", "Vocabulary code"}
)

// objectBlock builds the rows of an OBJECT_TYPE block with the given property rows.
func objectBlock(code string, props ...[]string) [][]string {
	rows := [][]string{
		{"OBJECT_TYPE"},
		objectHeaders,
		{code, "Instrument // Instrument", "", "", "FALSE"},
		propertyHeaders,
	}
	return append(rows, props...)
}

func prop(code, mandatory, dataType, vocabulary string) []string {
	return []string{code, code + " // " + code, mandatory, "TRUE", "General", code, dataType, vocabulary}
}

// sheet joins blocks with two empty rows between them.
func sheet(name string, blocks ...[][]string) *workbook.Sheet {
	var rows [][]string
	for i, b := range blocks {
		if i > 0 {
			rows = append(rows, []string{}, []string{})
		}
		rows = append(rows, b...)
	}
	return workbook.NewSheet(name, rows...)
}

func newExtractor(t *testing.T) (*Extractor, *logging.CaptureLogger) {
	t.Helper()
	table, err := rules.Default()
	require.NoError(t, err)
	logger := logging.NewCaptureLogger()
	x, err := New(table, logger)
	require.NoError(t, err)
	return x, logger
}

func defaultHeaders(t *testing.T) headerSet {
	t.Helper()
	table, err := rules.Default()
	require.NoError(t, err)
	return newHeaderSet(table)
}

func extract(t *testing.T, sheets ...*workbook.Sheet) *labschema.Result {
	t.Helper()
	x, _ := newExtractor(t)
	result, err := x.Run(workbook.New(sheets...))
	require.NoError(t, err)
	return result
}

// findDiagnostic returns the first diagnostic whose field and severity match.
func findDiagnostic(ds labschema.Diagnostics, sev labschema.Severity, field string) (labschema.Diagnostic, bool) {
	for _, d := range ds {
		if d.Severity == sev && d.Field == field {
			return d, true
		}
	}
	return labschema.Diagnostic{}, false
}
