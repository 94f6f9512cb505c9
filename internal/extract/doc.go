// Package extract turns workbook sheets into entity records.
//
// A sheet is a sequence of blocks. Each block starts with a category marker in
// its first cell and has a fixed layout relative to that row:
//
//	start     OBJECT_TYPE
//	start+1   Code | Description | ...          attribute headers
//	start+2   INSTRUMENT | ...                  attribute values
//	start+3   Code | Mandatory | Data type ...  sub-table headers
//	start+4.. $NAME | TRUE | VARCHAR ...        sub-table rows
//
// A run of two or more empty rows followed by a marker row or the end of the
// sheet ends a block. Every field is validated against the rule table and the
// problems found are collected as diagnostics; only a block that cannot be
// classified stops the run.
//
// Records are grouped per normalized sheet name and per category, in both
// cases ordered so that a code comes before every code with more dot
// segments.
package extract
