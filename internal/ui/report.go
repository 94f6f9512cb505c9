package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/labschema/pkg/labschema"
)

// Summary is the machine-readable outcome of a validation run.
type Summary struct {
	Source      labschema.Source      `json:"source"`
	Sheets      int                   `json:"sheets"`
	Entities    int                   `json:"entities"`
	Errors      int                   `json:"errors"`
	Warnings    int                   `json:"warnings"`
	Diagnostics labschema.Diagnostics `json:"diagnostics"`
}

// Summarize counts the entities and diagnostics of a result.
func Summarize(res *labschema.Result) Summary {
	s := Summary{
		Source:      res.Source,
		Sheets:      res.Sheets.Len(),
		Errors:      res.Diagnostics.Count(labschema.SeverityError),
		Warnings:    res.Diagnostics.Count(labschema.SeverityWarning),
		Diagnostics: res.Diagnostics,
	}
	if s.Diagnostics == nil {
		s.Diagnostics = labschema.Diagnostics{}
	}
	res.Sheets.Each(func(_ string, e *labschema.Entities) bool {
		s.Entities += e.Len()
		return true
	})
	return s
}

// Report writes a human-readable diagnostics report, grouped by sheet in the
// order the problems were found.
func Report(w io.Writer, res *labschema.Result, st Styles) {
	source := res.Source.Path
	if source == "" {
		source = "(in-memory workbook)"
	}
	fmt.Fprintln(w, st.Title.Render("Workbook: "+source))
	fmt.Fprintln(w, st.Muted.Render("Identity: "+res.Source.ID.String()))
	fmt.Fprintln(w)

	sheet := "\x00"
	for _, d := range res.Diagnostics {
		if d.Sheet != sheet {
			sheet = d.Sheet
			fmt.Fprintln(w, st.Sheet.Render(sheet))
		}
		symbol, style := SymbolWarning, st.Warning
		if d.Severity == labschema.SeverityError {
			symbol, style = SymbolCross, st.Error
		}
		fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), describe(d))
	}
	if len(res.Diagnostics) > 0 {
		fmt.Fprintln(w)
	}

	sum := Summarize(res)
	fmt.Fprintf(w, "%d entit%s in %d sheet(s)\n", sum.Entities, plural(sum.Entities, "y", "ies"), sum.Sheets)
	switch {
	case sum.Errors > 0:
		fmt.Fprintln(w, st.Error.Render(fmt.Sprintf("%s %d error(s), %d warning(s)", SymbolCross, sum.Errors, sum.Warnings)))
	case sum.Warnings > 0:
		fmt.Fprintln(w, st.Warning.Render(fmt.Sprintf("%s %d warning(s)", SymbolWarning, sum.Warnings)))
	default:
		fmt.Fprintln(w, st.Success.Render(SymbolCheck+" No problems found"))
	}
}

// describe renders a diagnostic without its sheet name, which the report
// prints as a heading.
func describe(d labschema.Diagnostic) string {
	var b strings.Builder
	switch {
	case d.Cell != "":
		b.WriteString(d.Cell)
	case d.Row > 0:
		fmt.Fprintf(&b, "row %d", d.Row)
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
	return strings.TrimSpace(b.String())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
