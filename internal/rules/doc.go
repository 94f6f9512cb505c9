// Package rules holds the validation rule table for entity blocks.
//
// The table maps every canonical entity category to an ordered list of
// policies for the entity attribute row and, for categories that carry one,
// for the sub-table columns. Each policy names the spreadsheet header, the
// output key the validated value is stored under, and the checks to apply.
//
// # Sources
//
// The default table is rules.yaml, embedded in the binary. Alternate tables
// are loaded from disk with Load and share the same format:
//
//	categories:
//	  OBJECT_TYPE:
//	    attributes:
//	      - header: Code
//	        key: code
//	        pattern: '^\$?[A-Z0-9_]+(\.[A-Z0-9_]+)*$'
//	    children:
//	      - header: Mandatory
//	        key: mandatory
//	        boolean: true
//
// # Totality
//
// A Table is only returned after every category declares a policy for each
// key its model needs (see labschema.AttributeKeys and labschema.ChildKeys).
// An incomplete table fails at construction with ErrInvalidRules rather than
// per cell during extraction.
//
// A Table is immutable and safe for concurrent use.
package rules
