// Package checksum provides workbook content hashing with normalization support.
//
// The package implements a dual checksum strategy:
//
//   - Raw checksum: Hash of the exact bytes (detects all changes)
//   - Normalized checksum: Hash of the canonical cell text after line
//     normalization (formatting-independent content identity)
//
// # Normalization Strategy
//
// Normalization makes checksums resilient to incidental differences:
//  1. Convert CRLF and CR line endings to LF
//  2. Strip trailing whitespace from every line
//  3. Drop trailing blank lines
//
// Callers hash workbook.Canonical() output, so two .xlsx files holding the
// same cell text share a normalized checksum even when their bytes differ.
// Identity derives a stable UUID v5 from that checksum.
//
// # Example Usage
//
//	calculator := checksum.New()
//	normalized := calculator.CalculateNormalized(wb.Canonical())
//	id := checksum.Identity(normalized)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
