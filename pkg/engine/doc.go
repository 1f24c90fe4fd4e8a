// Package engine normalizes chart datasets into render-ready screen
// coordinates.
//
// # Overview
//
// The engine is the single place where domain data meets geometry. Given an
// ordered dataset, a drawing-area size, and a chart kind, it produces a
// serializable Layout holding everything a renderer needs: point positions,
// the baseline (screen y of domain zero), sign-aware bar extents, and
// stacked group slots. Every chart kind shares the same extent, mapping,
// and baseline math from pkg/scale, so no two chart variants can disagree
// about where a value or the zero line falls.
//
// # Purity
//
// Normalize is a pure function of its inputs: no shared state, no I/O, no
// retained references. Calls may run concurrently on disjoint inputs
// without coordination, and identical inputs always produce bit-identical
// output. Callers that re-render frequently can memoize layouts through
// pkg/pipeline, which keys the cache by dataset hash and geometry.
//
// # Usage
//
//	ds := series.FromValues([]float64{3, 1, 4, 1, 5})
//	l, err := engine.Normalize(ds, engine.Geometry{Width: 800, Height: 600}, engine.KindLine)
//	if err != nil {
//	    return err
//	}
//	for _, p := range l.Points {
//	    // draw at (p.X, p.Y)
//	}
package engine
