// Package validate checks raw cell values against rule policies.
//
// Validation never fails: Cell always returns a normalized value together
// with zero or more diagnostics. Empty cells normalize to the empty string
// and are never reported here; whether an empty value is acceptable is the
// extractor's decision, since it knows which fields are required.
//
// The functions are stateless and safe for concurrent use.
package validate
