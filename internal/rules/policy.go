package rules

import (
	"regexp"
	"strings"
)

// Extra names a cross-field check.
type Extra string

const (
	// ExtraNone means no cross-field check.
	ExtraNone Extra = ""

	// ExtraReducedVersion requires the value to be a reduced version of the entity code.
	ExtraReducedVersion Extra = "reduced_version"
)

// Policy describes how one field is located, validated and stored.
type Policy struct {
	// Header is the column header text, matched case-insensitively.
	Header string

	// Aliases are alternative header spellings.
	Aliases []string

	// Key is the output key the normalized value is stored under.
	Key string

	// Pattern, when set, must match non-empty values.
	Pattern *regexp.Regexp

	// Hint describes Pattern in diagnostics.
	Hint string

	Boolean    bool
	DataType   bool
	URL        bool
	Extra      Extra
	AllowEmpty bool

	// Optional downgrades a missing header from ERROR to WARNING.
	Optional bool
}

// Headers returns the header followed by its aliases.
func (p Policy) Headers() []string {
	return append([]string{p.Header}, p.Aliases...)
}

// MatchesHeader reports whether a header cell names this policy's column.
func (p Policy) MatchesHeader(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	for _, h := range p.Headers() {
		if strings.EqualFold(h, cell) {
			return true
		}
	}
	return false
}
