package workbook_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/labschema/internal/workbook"
	"github.com/vvka-141/labschema/internal/workbook/xlsxtest"
	"github.com/vvka-141/labschema/pkg/labschema"
)

func TestSheet_CellAccess(t *testing.T) {
	s := workbook.NewSheet("Objects",
		[]string{"OBJECT_TYPE"},
		[]string{"Code", "Description"},
		nil,
		[]string{"", "  "},
	)

	assert.Equal(t, 4, s.RowCount())
	assert.Equal(t, "Description", s.Cell(1, 1))
	assert.Equal(t, "", s.Cell(0, 5))
	assert.Equal(t, "", s.Cell(10, 0))
	assert.Equal(t, "", s.Cell(-1, 0))
	assert.False(t, s.IsEmptyRow(0))
	assert.True(t, s.IsEmptyRow(2))
	assert.True(t, s.IsEmptyRow(3))
	assert.True(t, s.IsEmptyRow(99))
	assert.False(t, s.IsEmpty())
	assert.True(t, workbook.NewSheet("Blank", nil, []string{" "}).IsEmpty())
}

func TestWorkbook_Filter(t *testing.T) {
	wb := workbook.New(workbook.NewSheet("A"), workbook.NewSheet("B"), workbook.NewSheet("C"))

	filtered := wb.Filter([]string{"C", "A"})
	require.Len(t, filtered.Sheets, 2)
	assert.Equal(t, "A", filtered.Sheets[0].Name)
	assert.Equal(t, "C", filtered.Sheets[1].Name)

	assert.Same(t, wb, wb.Filter(nil))
}

func TestWorkbook_CanonicalIgnoresTrailingBlanks(t *testing.T) {
	a := workbook.New(workbook.NewSheet("S",
		[]string{"OBJECT_TYPE", "", ""},
		[]string{" Code ", "Description"},
		nil,
		nil,
	))
	b := workbook.New(workbook.NewSheet("S",
		[]string{"OBJECT_TYPE"},
		[]string{"Code", "Description  "},
	))

	assert.Equal(t, string(a.Canonical()), string(b.Canonical()))
	assert.Equal(t, "# S\nOBJECT_TYPE\nCode\tDescription\n", string(a.Canonical()))
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "A1", workbook.CellName(0, 0))
	assert.Equal(t, "C5", workbook.CellName(4, 2))
	assert.Equal(t, "AA10", workbook.CellName(9, 26))
}

func TestOpen_RoundTrip(t *testing.T) {
	path := xlsxtest.Write(t, "schema.xlsx",
		workbook.NewSheet("Object types",
			[]string{"OBJECT_TYPE"},
			[]string{"Code", "Description", "Auto generate codes"},
			[]string{"INSTRUMENT", "Instrument // Instrument", "TRUE"},
		),
		workbook.NewSheet("Vocabularies",
			[]string{"VOCABULARY_TYPE"},
		),
	)

	wb, err := workbook.Open(path)
	require.NoError(t, err)

	assert.Equal(t, path, wb.Path)
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, "Object types", wb.Sheets[0].Name)
	assert.Equal(t, "Vocabularies", wb.Sheets[1].Name)
	assert.Equal(t, "INSTRUMENT", wb.Sheets[0].Cell(2, 0))
	assert.Equal(t, "TRUE", wb.Sheets[0].Cell(2, 2))
}

func TestOpen_Missing(t *testing.T) {
	_, err := workbook.Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, labschema.ErrWorkbookUnreadable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead_NotAWorkbook(t *testing.T) {
	_, err := workbook.Read(strings.NewReader("this is not a zip archive"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, labschema.ErrWorkbookUnreadable))
}
