package scale

// BaselineY returns the screen y-coordinate where domain value zero falls,
// using the same mapping formula as Linear against the y-extent. The result
// is clamped to the drawing area:
//
//   - all-positive extent (min >= 0): baseline sits at the bottom (height)
//   - all-negative extent (max <= 0): baseline sits at the top (0)
//   - mixed-sign extent: baseline is strictly between, at the proportional
//     position of zero within the extent
//
// Renderers must use this value for both the zero axis line and for bar
// anchoring; deriving either from a different formula reintroduces the
// inconsistent axis placement this engine exists to remove.
func BaselineY(e Extent, height float64) float64 {
	y := NewLinear(e, height).Y(0)
	if y < 0 {
		return 0
	}
	if y > height {
		return height
	}
	return y
}
