// Package stack aggregates data points sharing an x-key into cumulative
// stacked groups.
//
// Grouping uses exact equality of the x projection, preserving the
// first-seen order of distinct keys. Exact float64 equality is fragile for
// computed x values; callers with floating-point x domains should pass a
// KeyFunc that quantizes keys (or use an integer-projecting domain type
// such as series.Ordinal).
package stack

import "github.com/plotgrid/plotgrid/pkg/errors"

// KeyFunc maps an x projection to the grouping key. A nil KeyFunc groups by
// the raw projection value.
type KeyFunc func(x float64) float64

// Segment is one point's contribution to a stacked group, with its
// cumulative extent in domain units. Start and End carry the running sum
// before and after this value, so renderers can place each slice without
// re-deriving the accumulation.
type Segment struct {
	Value float64 `json:"value" bson:"value"`
	Start float64 `json:"start" bson:"start"`
	End   float64 `json:"end" bson:"end"`
}

// Group is the aggregate of all points sharing one x-key.
type Group struct {
	Key      float64   `json:"key" bson:"key"`
	Sum      float64   `json:"sum" bson:"sum"`
	Segments []Segment `json:"segments" bson:"segments"`
}

// Aggregate groups the parallel xs/ys slices by x-key and accumulates y
// values per group in input order. Groups appear in first-seen key order.
//
// The slices must be equal-length projections of the same dataset; empty
// input returns EMPTY_DATASET.
func Aggregate(xs, ys []float64, key KeyFunc) ([]Group, error) {
	if len(xs) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "cannot stack zero points")
	}
	if len(xs) != len(ys) {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "mismatched projections: %d x values, %d y values", len(xs), len(ys))
	}
	if key == nil {
		key = func(x float64) float64 { return x }
	}

	index := make(map[float64]int, len(xs))
	groups := make([]Group, 0, len(xs))

	for i, x := range xs {
		k := key(x)
		gi, ok := index[k]
		if !ok {
			gi = len(groups)
			index[k] = gi
			groups = append(groups, Group{Key: k})
		}

		g := &groups[gi]
		g.Segments = append(g.Segments, Segment{
			Value: ys[i],
			Start: g.Sum,
			End:   g.Sum + ys[i],
		})
		g.Sum += ys[i]
	}

	return groups, nil
}

// Sums returns the per-group sums in group order. Useful for computing the
// y-extent of a stacked chart, where the cumulative totals define the range.
func Sums(groups []Group) []float64 {
	sums := make([]float64, len(groups))
	for i, g := range groups {
		sums[i] = g.Sum
	}
	return sums
}
