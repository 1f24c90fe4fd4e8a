// Package scale converts numeric domain values into bounded screen-space
// coordinates.
//
// # Overview
//
// This package holds the scaling math shared by every chart kind:
//
//   - Extent: the inclusive [min, max] range of a projection over a dataset
//   - Linear: the value → coordinate mapper for both axes
//   - BaselineY: the screen y-coordinate of domain value zero
//   - BarScaler: sign-aware bar lengths measured from the baseline
//
// Screen space follows the raster convention: origin at the top-left,
// y increasing downward. Larger domain values therefore map to smaller
// screen y (higher on screen).
//
// # Degenerate Ranges
//
// A dataset with a single distinct value produces an extent where min equals
// max. This is not an error: Linear applies a fixed Epsilon floor to the
// range so the value maps deterministically instead of dividing by zero.
//
// # Baseline Consistency
//
// BaselineY applies the exact same mapping formula as Linear, so the zero
// line drawn by a renderer always coincides with where data at y=0 lands.
// Axis placement and data placement can never disagree.
package scale
