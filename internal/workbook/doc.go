// Package workbook provides the in-memory grid the extractor reads.
//
// A Workbook is an ordered list of named sheets, each a ragged grid of cell
// text. Workbooks come from .xlsx files (Open, Read), which are loaded fully
// into memory with excelize, or are built directly with New and NewSheet.
//
// All access after loading is synchronous and in-memory; out-of-range cells
// read as the empty string.
package workbook
