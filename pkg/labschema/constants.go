package labschema

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Extraction completed
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or rule table
	ExitWorkbookError    = 11 // Workbook could not be read
	ExitExtractionFailed = 12 // Fatal block structure error
	ExitValidationFailed = 13 // ERROR diagnostics in strict mode
)

// Block layout, as row offsets from the marker row.
const (
	// HeaderRowOffset is the row holding the entity attribute headers.
	HeaderRowOffset = 1

	// ValueRowOffset is the single row holding the entity attribute values.
	ValueRowOffset = 2

	// ChildHeaderRowOffset is the row holding the sub-table headers.
	ChildHeaderRowOffset = 3

	// ChildDataRowOffset is the first sub-table data row.
	ChildDataRowOffset = 4

	// BlockTerminatorRun is the number of consecutive empty rows that can end a block.
	BlockTerminatorRun = 2
)
