package scale

// Linear maps values within a domain extent to positions within a target
// screen extent of the given size.
//
// Guarantees for a non-degenerate extent:
//   - X(extent.Min) == 0 and X(extent.Max) == Size
//   - Y(extent.Min) == Size and Y(extent.Max) == 0 (vertical inversion)
//   - monotonic for all values in between
//
// For a degenerate extent (min == max) the mapping centers the single value:
// the Epsilon floor replaces the zero range and the extent is shifted so the
// value lands at the midpoint of the target, never at an edge and never NaN.
type Linear struct {
	Extent Extent
	Size   float64
}

// NewLinear creates a mapper from extent onto [0, size].
func NewLinear(e Extent, size float64) Linear {
	return Linear{Extent: e, Size: size}
}

// Normalize returns the position of v within the extent as a fraction.
// Values inside the extent produce results in [0, 1]; values outside
// extrapolate linearly.
func (l Linear) Normalize(v float64) float64 {
	min := l.Extent.Min
	if l.Extent.Degenerate() {
		min -= l.Extent.Range() / 2
	}
	return (v - min) / l.Extent.Range()
}

// X maps v to a horizontal screen coordinate: min maps left, max maps right.
func (l Linear) X(v float64) float64 {
	return l.Normalize(v) * l.Size
}

// Y maps v to a vertical screen coordinate with axis inversion: larger
// domain values map to smaller screen y (higher on screen).
func (l Linear) Y(v float64) float64 {
	return l.Size - l.Normalize(v)*l.Size
}
