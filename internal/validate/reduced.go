package validate

import "strings"

// codeDelimiters are the separators used inside hierarchical codes.
const codeDelimiters = "._"

// IsReducedVersion reports whether candidate is an acceptable shortened form
// of code, as used for generated code prefixes.
//
// A literal prefix of code always qualifies. Otherwise two values without any
// delimiter are compatible, and values with delimiters must both use the same
// single delimiter and split into the same number of segments.
func IsReducedVersion(candidate, code string) bool {
	if candidate == "" || code == "" {
		return false
	}
	if strings.HasPrefix(code, candidate) {
		return true
	}

	cd := delimitersOf(candidate)
	kd := delimitersOf(code)
	if cd == "" && kd == "" {
		return true
	}
	if len(cd) != 1 || cd != kd {
		return false
	}

	return len(strings.Split(candidate, cd)) == len(strings.Split(code, kd))
}

// delimitersOf returns the distinct delimiter characters found in s, in
// codeDelimiters order.
func delimitersOf(s string) string {
	var found strings.Builder
	for _, d := range codeDelimiters {
		if strings.ContainsRune(s, d) {
			found.WriteRune(d)
		}
	}
	return found.String()
}
