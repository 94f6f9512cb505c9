// Package ui renders extraction results for people: a diagnostics report
// grouped by sheet with a closing summary, styled with lipgloss when the
// output is a color-capable terminal.
package ui
