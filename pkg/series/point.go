package series

import (
	"math"

	"github.com/plotgrid/plotgrid/pkg/errors"
)

// Point is a single datum: an (x, y) pair of domain values with an optional
// identity. ID is only needed when the rendering layer must distinguish
// points for overlays; the engine itself never reads it.
type Point struct {
	X  Plottable
	Y  Plottable
	ID string
}

// Dataset is an ordered, immutable snapshot of points for one normalization
// call. The engine never mutates a dataset; callers own it for the duration
// of the call and may discard it afterwards.
type Dataset []Point

// Len returns the number of points in the dataset.
func (d Dataset) Len() int { return len(d) }

// Project converts the dataset to parallel x and y projection slices.
//
// Project returns an error if:
//   - The dataset is empty (EMPTY_DATASET)
//   - Any projection is NaN or ±Inf (INVALID_VALUE, with the point index)
//
// The returned slices are freshly allocated and preserve input order.
func (d Dataset) Project() (xs, ys []float64, err error) {
	if len(d) == 0 {
		return nil, nil, errors.New(errors.ErrCodeEmptyDataset, "dataset has no points")
	}

	xs = make([]float64, len(d))
	ys = make([]float64, len(d))
	for i, p := range d {
		x := p.X.Plot()
		if !isFinite(x) {
			return nil, nil, errors.New(errors.ErrCodeInvalidValue, "point %d: x projects to %v", i, x)
		}
		y := p.Y.Plot()
		if !isFinite(y) {
			return nil, nil, errors.New(errors.ErrCodeInvalidValue, "point %d: y projects to %v", i, y)
		}
		xs[i] = x
		ys[i] = y
	}
	return xs, ys, nil
}

// IDs returns the point identities in input order.
// Points without an explicit ID yield an empty string.
func (d Dataset) IDs() []string {
	ids := make([]string, len(d))
	for i, p := range d {
		ids[i] = p.ID
	}
	return ids
}

// FromValues builds a dataset from y values, using the point index as x.
// This matches the common "sequence chart" input shape.
func FromValues(ys []float64) Dataset {
	d := make(Dataset, len(ys))
	for i, y := range ys {
		d[i] = Point{X: Integer(i), Y: Number(y)}
	}
	return d
}

// FromPairs builds a dataset from parallel x and y slices.
// Extra values in the longer slice are ignored.
func FromPairs(xs, ys []float64) Dataset {
	n := min(len(xs), len(ys))
	d := make(Dataset, n)
	for i := 0; i < n; i++ {
		d[i] = Point{X: Number(xs[i]), Y: Number(ys[i])}
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
