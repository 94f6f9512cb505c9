package labschema

import (
	"fmt"
	"strings"
)

// Severity of a Diagnostic. Fatal problems are returned as errors instead.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText renders the severity name in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText reads a severity name written by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "WARNING":
		*s = SeverityWarning
	case "ERROR":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Diagnostic is a non-fatal problem found while extracting a workbook.
// Row and Column are 1-based; zero means unknown.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Sheet    string   `json:"sheet,omitempty"`
	Cell     string   `json:"cell,omitempty"`
	Row      int      `json:"row,omitempty"`
	Column   int      `json:"column,omitempty"`
	Category Category `json:"category,omitempty"`
	Entity   string   `json:"entity,omitempty"`
	Field    string   `json:"field,omitempty"`
	Value    string   `json:"value,omitempty"`
	Message  string   `json:"message"`
}

// Location renders the sheet and cell part of the diagnostic.
func (d Diagnostic) Location() string {
	switch {
	case d.Sheet != "" && d.Cell != "":
		return fmt.Sprintf("%s!%s", d.Sheet, d.Cell)
	case d.Sheet != "" && d.Row > 0:
		return fmt.Sprintf("%s (row %d)", d.Sheet, d.Row)
	default:
		return d.Sheet
	}
}

func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Severity.String())
	if loc := d.Location(); loc != "" {
		b.WriteString(" ")
		b.WriteString(loc)
	}
	if d.Entity != "" {
		fmt.Fprintf(&b, " [%s]", d.Entity)
	}
	if d.Field != "" {
		fmt.Fprintf(&b, " %s", d.Field)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.Value != "" {
		fmt.Fprintf(&b, " (got %q)", d.Value)
	}
	return b.String()
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics []Diagnostic

// Count returns how many diagnostics have the given severity.
func (ds Diagnostics) Count(s Severity) int {
	n := 0
	for _, d := range ds {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// HasErrors reports whether any ERROR diagnostic is present.
func (ds Diagnostics) HasErrors() bool {
	return ds.Count(SeverityError) > 0
}
