// Package console provides the output sinks written to by package verboselog.
//
// A [Console] has two entry points that mirror the browser console the logger
// was designed for:
//   - Log: a line-oriented sink, operands separated by a single space
//   - Table: a tabular sink that renders slices, maps and structs as a grid
//
// [WriterConsole] writes to any io.Writer. When the writer is a terminal its
// width is detected with golang.org/x/term and wide tables are truncated to
// fit. Cell widths are measured in terminal columns so emoji and East Asian
// text stay aligned.
//
// [Recorder] captures calls in memory and is intended for tests.
//
// # Table Layout
//
// The first column is always "(index)". For a slice it holds the element
// position, for a map the key, for a struct the field name. Record-like
// elements (maps and structs) contribute one column per key in first-seen
// order; primitive elements are collected under a trailing "Values" column:
//
//	(index) | Values
//	--------+-------
//	0       | a
//	1       | b
//
// Scalar data has no tabular form and is written as a plain line.
package console
