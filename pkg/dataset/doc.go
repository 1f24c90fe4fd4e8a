// Package dataset provides JSON and TOML import for chart datasets.
//
// # Overview
//
// This package decodes external data files into a [series.Dataset] that the
// normalization engine can consume. The formats are designed for:
//
//   - Hand-written fixtures and tool-generated exports alike
//   - Mixed x-value domains (numbers, timestamps, category labels)
//   - Round-trip preservation: import, normalize, export, re-import
//
// # JSON Format
//
// The canonical form is an object with a "points" array:
//
//	{
//	  "points": [
//	    {"x": 0, "y": 12.5},
//	    {"x": 1, "y": 9.0, "id": "q2"},
//	    {"x": "2024-03-01T00:00:00Z", "y": 4}
//	  ]
//	}
//
// As a shorthand, an object with only a "values" array assigns x = 0..n-1:
//
//	{"values": [3, 1, 4, 1, 5]}
//
// # X-Value Interpretation
//
// Each point's x field may be:
//
//   - a number, used directly as the domain coordinate
//   - an RFC 3339 timestamp string, projected to unix seconds
//   - any other string, treated as a category label positioned by its
//     first-seen order in the file
//
// The y field must be a finite number. NaN and infinities are rejected at
// projection time, not silently dropped.
//
// # TOML Format
//
// The same structure expressed as TOML tables:
//
//	[[points]]
//	x = 0
//	y = 12.5
//
//	[[points]]
//	x = 2024-03-01T00:00:00Z
//	y = 4.0
//
// TOML datetimes decode directly to timestamps without string parsing.
//
// # Import
//
// Use [Import] to load a file by path with format detection from the
// extension, or [ReadJSON] and [ReadTOML] to read from any io.Reader.
// Decoding errors carry the structured codes from [pkg/errors], so callers
// can distinguish a malformed file from a missing one.
//
// [pkg/errors]: github.com/plotgrid/plotgrid/pkg/errors
// [series.Dataset]: github.com/plotgrid/plotgrid/pkg/series.Dataset
package dataset
