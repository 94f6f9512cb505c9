package labschema

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := extractor.Run(wb)
//	if errors.Is(err, labschema.ErrUnknownCategory) {
//	    // A block marker is not one of the recognized entity categories
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRules indicates the validation rule table is incomplete or malformed.
	ErrInvalidRules = errors.New("invalid validation rules")

	// ErrUnknownCategory indicates a block marker that is not a recognized category.
	ErrUnknownCategory = errors.New("unknown entity category")

	// ErrWorkbookUnreadable indicates the workbook could not be opened or parsed.
	ErrWorkbookUnreadable = errors.New("workbook unreadable")

	// ErrValidationFailed indicates extraction finished with ERROR diagnostics
	// and the caller asked for strict handling.
	ErrValidationFailed = errors.New("validation failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidRules):
		return ExitConfigError
	case errors.Is(err, ErrWorkbookUnreadable):
		return ExitWorkbookError
	case errors.Is(err, ErrUnknownCategory):
		return ExitExtractionFailed
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	}

	// Cobra reports flag and argument problems as plain errors
	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// usageErrorMarkers are fragments of the messages cobra and pflag produce for
// command-line misuse.
var usageErrorMarkers = []string{
	"missing required argument",
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"required flag",
	"invalid argument",
	"accepts ",
}
