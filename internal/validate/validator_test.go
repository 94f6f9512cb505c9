package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/pkg/labschema"
)

var (
	boolPolicy     = rules.Policy{Header: "Mandatory", Key: labschema.KeyMandatory, Boolean: true}
	dataTypePolicy = rules.Policy{Header: "Data type", Key: labschema.KeyDataType, DataType: true}
	urlPolicy      = rules.Policy{Header: "Url template", Key: labschema.KeyURLTemplate, URL: true}
	codePolicy     = rules.Policy{
		Header:  "Code",
		Key:     labschema.KeyCode,
		Pattern: regexp.MustCompile(`^\$?[A-Z0-9_]+(\.[A-Z0-9_]+)*$`),
		Hint:    "uppercase code",
	}
	prefixPolicy = rules.Policy{Header: "Generated code prefix", Key: labschema.KeyGeneratedCodePrefix, Extra: rules.ExtraReducedVersion}
	plainPolicy  = rules.Policy{Header: "Section", Key: labschema.KeySection}
)

func TestCell_EmptyNeverReported(t *testing.T) {
	for _, p := range []rules.Policy{boolPolicy, dataTypePolicy, urlPolicy, codePolicy, prefixPolicy, plainPolicy} {
		for _, raw := range []string{"", "   ", "\t\n"} {
			v, diags := Cell(raw, p, "INSTRUMENT")
			assert.Empty(t, diags, "policy %s raw %q", p.Key, raw)
			assert.True(t, v.IsEmpty())
			assert.Equal(t, "", v.String())
		}
	}
}

func TestCell_Boolean(t *testing.T) {
	tests := []struct {
		raw      string
		want     bool
		wantDiag bool
	}{
		{"TRUE", true, false},
		{"TrUe", true, false},
		{"false", false, false},
		{" FALSE ", false, false},
		{"yes", false, true},
		{"1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, diags := Cell(tt.raw, boolPolicy, "")
			assert.True(t, v.IsBool)
			assert.Equal(t, tt.want, v.Bool)
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, labschema.SeverityError, diags[0].Severity)
				assert.Equal(t, "Mandatory", diags[0].Field)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestCell_DataType(t *testing.T) {
	v, diags := Cell("VARCHAR", dataTypePolicy, "")
	assert.Empty(t, diags)
	assert.Equal(t, "VARCHAR", v.Text)

	v, diags = Cell("unknown_type", dataTypePolicy, "")
	assert.Equal(t, "UNKNOWN_TYPE", v.Text)
	require.Len(t, diags, 1)
	assert.Equal(t, labschema.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "CONTROLLEDVOCABULARY")
	assert.Equal(t, "unknown_type", diags[0].Value)

	v, diags = Cell("varchar", dataTypePolicy, "")
	assert.Equal(t, "VARCHAR", v.Text)
	assert.Len(t, diags, 1)
}

func TestCell_URL(t *testing.T) {
	_, diags := Cell("https://example.org/terms/${term}", urlPolicy, "")
	assert.Empty(t, diags)

	v, diags := Cell("example.org/terms", urlPolicy, "")
	assert.Equal(t, "example.org/terms", v.Text)
	require.Len(t, diags, 1)
	assert.Equal(t, labschema.SeverityError, diags[0].Severity)
}

func TestCell_Pattern(t *testing.T) {
	_, diags := Cell("$NAME", codePolicy, "")
	assert.Empty(t, diags)

	v, diags := Cell("instrument", codePolicy, "")
	assert.Equal(t, "instrument", v.Text)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "uppercase code")
}

func TestCell_ReducedVersionIsWarning(t *testing.T) {
	_, diags := Cell("INS", prefixPolicy, "INSTRUMENT")
	assert.Empty(t, diags)

	v, diags := Cell("EXP.STEP.X", prefixPolicy, "INSTRUMENT.SENSOR")
	assert.Equal(t, "EXP.STEP.X", v.Text)
	require.Len(t, diags, 1)
	assert.Equal(t, labschema.SeverityWarning, diags[0].Severity)

	_, diags = Cell("EXP.STEP.X", prefixPolicy, "")
	assert.Empty(t, diags, "no code, nothing to compare against")
}

func TestCell_GenericTrims(t *testing.T) {
	v, diags := Cell("  General info  ", plainPolicy, "")
	assert.Empty(t, diags)
	assert.Equal(t, "General info", v.Text)
}
