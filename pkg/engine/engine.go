package engine

import (
	"github.com/plotgrid/plotgrid/pkg/scale"
	"github.com/plotgrid/plotgrid/pkg/series"
	"github.com/plotgrid/plotgrid/pkg/stack"
)

// Normalize converts a dataset into a render-ready layout for the given
// chart kind and drawing-area geometry.
//
// Normalize returns an error if:
//   - The geometry has a negative or non-finite dimension (INVALID_GEOMETRY)
//   - The kind is not one of line, point, bar, stackedbar (INVALID_KIND)
//   - The dataset is empty (EMPTY_DATASET)
//   - Any projection is NaN or ±Inf (INVALID_VALUE)
//
// On error no partial layout is returned. The call is pure: it never
// mutates the dataset and identical inputs yield bit-identical layouts.
func Normalize(ds series.Dataset, geom Geometry, kind Kind, opts ...Option) (Layout, error) {
	if err := geom.Validate(); err != nil {
		return Layout{}, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return Layout{}, err
	}

	xs, ys, err := ds.Project()
	if err != nil {
		return Layout{}, err
	}

	cfg := newConfig(opts...)

	switch kind {
	case KindLine, KindPoint:
		return normalizePoints(ds, xs, ys, geom, kind)
	case KindBar:
		return normalizeBars(xs, ys, geom)
	default:
		return normalizeStacked(xs, ys, geom, cfg)
	}
}

// normalizePoints computes one screen position per point plus the baseline.
// Extents are computed exactly once per axis for the whole pass.
func normalizePoints(ds series.Dataset, xs, ys []float64, geom Geometry, kind Kind) (Layout, error) {
	xe, err := scale.ComputeExtent(xs)
	if err != nil {
		return Layout{}, err
	}
	ye, err := scale.ComputeExtent(ys)
	if err != nil {
		return Layout{}, err
	}

	lx := scale.NewLinear(xe, geom.Width)
	ly := scale.NewLinear(ye, geom.Height)

	points := make([]Position, len(xs))
	for i := range xs {
		points[i] = Position{X: lx.X(xs[i]), Y: ly.Y(ys[i]), ID: ds[i].ID}
	}

	return Layout{
		Kind:     kind,
		Width:    geom.Width,
		Height:   geom.Height,
		Baseline: scale.BaselineY(ye, geom.Height),
		Points:   points,
	}, nil
}

// normalizeBars computes sign-aware bar extents anchored at the baseline.
func normalizeBars(xs, ys []float64, geom Geometry) (Layout, error) {
	xe, err := scale.ComputeExtent(xs)
	if err != nil {
		return Layout{}, err
	}
	ye, err := scale.ComputeExtent(ys)
	if err != nil {
		return Layout{}, err
	}

	lx := scale.NewLinear(xe, geom.Width)
	bs := scale.NewBarScaler(ye, geom.Height)

	bars := make([]BarMark, len(xs))
	for i := range xs {
		b := bs.Bar(ys[i])
		bars[i] = BarMark{X: lx.X(xs[i]), Length: b.Length, Up: b.Up}
	}

	return Layout{
		Kind:     KindBar,
		Width:    geom.Width,
		Height:   geom.Height,
		Baseline: bs.Baseline,
		Bars:     bars,
	}, nil
}

// normalizeStacked aggregates points by x-key and assigns each group an
// equal slot of the drawing width, centered within it. The y-extent spans
// every cumulative segment bound, so partial sums that overshoot the final
// total (mixed-sign stacks) stay inside the drawing area.
func normalizeStacked(xs, ys []float64, geom Geometry, cfg config) (Layout, error) {
	groups, err := stack.Aggregate(xs, ys, cfg.stackKey)
	if err != nil {
		return Layout{}, err
	}

	bounds := make([]float64, 0, 2*len(xs))
	for _, g := range groups {
		for _, s := range g.Segments {
			bounds = append(bounds, s.Start, s.End)
		}
	}
	ye, err := scale.ComputeExtent(bounds)
	if err != nil {
		return Layout{}, err
	}

	ly := scale.NewLinear(ye, geom.Height)

	slot := 0.0
	if len(groups) > 0 {
		slot = geom.Width / float64(len(groups))
	}
	barWidth := slot * cfg.slotFill

	out := make([]StackedGroup, len(groups))
	for i, g := range groups {
		out[i] = StackedGroup{
			Key:      g.Key,
			Sum:      g.Sum,
			Width:    barWidth,
			Offset:   float64(i)*slot + (slot-barWidth)/2,
			Segments: segmentsFromStack(g.Segments, ly),
		}
	}

	return Layout{
		Kind:     KindStackedBar,
		Width:    geom.Width,
		Height:   geom.Height,
		Baseline: scale.BaselineY(ye, geom.Height),
		Groups:   out,
	}, nil
}
