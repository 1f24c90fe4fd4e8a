package scale

import "github.com/plotgrid/plotgrid/pkg/errors"

// Epsilon is the minimum-range floor applied when an extent is degenerate
// (min == max). It is expressed in domain units and keeps the mapping
// defined without dividing by zero: a single-valued dataset maps to the
// midpoint of the target extent.
const Epsilon = 1e-3

// Extent is the inclusive [Min, Max] range of a numeric projection.
// Invariant: Min <= Max.
type Extent struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// ComputeExtent scans vals once and returns their extent.
// Empty input is a precondition violation and returns EMPTY_DATASET.
func ComputeExtent(vals []float64) (Extent, error) {
	if len(vals) == 0 {
		return Extent{}, errors.New(errors.ErrCodeEmptyDataset, "cannot compute extent of zero values")
	}

	e := Extent{Min: vals[0], Max: vals[0]}
	for _, v := range vals[1:] {
		if v < e.Min {
			e.Min = v
		}
		if v > e.Max {
			e.Max = v
		}
	}
	return e, nil
}

// Range returns the extent span with the Epsilon floor applied.
// The result is always positive, even for degenerate extents.
func (e Extent) Range() float64 {
	if r := e.Max - e.Min; r > Epsilon {
		return r
	}
	return Epsilon
}

// Degenerate reports whether the extent covers a single distinct value.
func (e Extent) Degenerate() bool { return e.Min == e.Max }

// Contains reports whether v falls within the extent, inclusive.
func (e Extent) Contains(v float64) bool { return v >= e.Min && v <= e.Max }
