// Package series defines the domain-value model consumed by the
// normalization engine.
//
// # Overview
//
// Chart data arrives as ordered (x, y) pairs whose values may live in any
// domain: plain numbers, timestamps, or ordinal categories. The engine only
// ever works with numeric projections of those values. This package provides:
//
//   - Plottable: the single projection interface all domain values implement
//   - Adapters: Number, Integer, Time, and Ordinal for the common domains
//   - Point and Dataset: the immutable input snapshot for one normalization
//
// # Projection Contract
//
// Plot must be pure and deterministic: equal domain values must always
// project to the same float64. Values projecting to NaN or ±Inf are rejected
// during Dataset.Project with an INVALID_VALUE error; the engine never
// produces non-finite output from finite input.
//
// # Usage
//
//	ds := series.Dataset{
//	    {X: series.Number(1), Y: series.Number(-10)},
//	    {X: series.Number(2), Y: series.Number(20)},
//	}
//	xs, ys, err := ds.Project()
package series
