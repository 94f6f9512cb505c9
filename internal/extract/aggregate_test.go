package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetName(t *testing.T) {
	tests := map[string]string{
		"Sheet1":            "sheet1",
		"  Objects ":        "objects",
		"Object Types":      "object_types",
		"Object - Types":    "object_types",
		"Object Types (v2)": "object_types_v2_",
		"Größe":             "größe",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SheetName(in), "SheetName(%q)", in)
	}
}
