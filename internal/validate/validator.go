package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/pkg/labschema"
)

// urlRegex accepts absolute http and https URLs without whitespace.
var urlRegex = regexp.MustCompile(`(?i)^https?://[^\s/$.?#][^\s]*$`)

// CleanCell trims the whitespace spreadsheet editors leave around values.
func CleanCell(raw string) string {
	return strings.TrimSpace(raw)
}

// Cell validates raw against p and returns the normalized value.
// code is the entity code of the block, used by cross-field checks; it may
// be empty when the field being validated is the code itself.
//
// Diagnostics carry Severity, Field, Value and Message only; the caller adds
// the location.
func Cell(raw string, p rules.Policy, code string) (labschema.Value, []labschema.Diagnostic) {
	value := CleanCell(raw)
	if value == "" {
		return labschema.TextValue(""), nil
	}

	var diags []labschema.Diagnostic
	report := func(sev labschema.Severity, format string, args ...interface{}) {
		diags = append(diags, labschema.Diagnostic{
			Severity: sev,
			Field:    p.Header,
			Value:    value,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	switch {
	case p.Boolean:
		b, ok := ParseBool(value)
		if !ok {
			report(labschema.SeverityError, "must be TRUE or FALSE")
		}
		return labschema.BoolValue(b), diags

	case p.DataType:
		if !labschema.IsDataType(value) {
			report(labschema.SeverityError, "must be one of: %s", allowedDataTypes())
			value = strings.ToUpper(value)
		}

	case p.URL:
		if !urlRegex.MatchString(value) {
			report(labschema.SeverityError, "must be an http(s) URL")
		}
	}

	if p.Pattern != nil && !p.Pattern.MatchString(value) {
		if p.Hint != "" {
			report(labschema.SeverityError, "does not match the expected format: %s", p.Hint)
		} else {
			report(labschema.SeverityError, "does not match pattern %s", p.Pattern)
		}
	}

	if p.Extra == rules.ExtraReducedVersion && code != "" && !IsReducedVersion(value, code) {
		report(labschema.SeverityWarning, "is not a reduced version of code %q", code)
	}

	return labschema.TextValue(value), diags
}

// ParseBool reads TRUE/FALSE text case-insensitively. Anything else is false, not ok.
func ParseBool(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}

func allowedDataTypes() string {
	types := labschema.DataTypes()
	names := make([]string, len(types))
	for i, dt := range types {
		names[i] = string(dt)
	}
	return strings.Join(names, ", ")
}
