package series

import "time"

// Plottable is a domain value that can be projected onto a numeric axis.
// Implementations must be deterministic: equal values project equally.
type Plottable interface {
	// Plot returns the numeric projection used for scaling math.
	Plot() float64
}

// Number is a float64 domain value. It projects to itself.
type Number float64

// Plot returns the value unchanged.
func (n Number) Plot() float64 { return float64(n) }

// Integer is an int domain value, convenient for counts and indices.
type Integer int

// Plot returns the value as a float64.
func (i Integer) Plot() float64 { return float64(i) }

// Time is a time.Time domain value, typically used on the x axis.
type Time time.Time

// Plot returns the time as fractional seconds since the Unix epoch.
// Sub-second precision is preserved down to nanoseconds.
func (t Time) Plot() float64 {
	tt := time.Time(t)
	return float64(tt.Unix()) + float64(tt.Nanosecond())/1e9
}

// Ordinal is a categorical domain value identified by its position in an
// ordered category list. Two points in the same category share the same
// Index, which makes Ordinal a safe stacking key (exact integer equality,
// no floating-point fragility).
type Ordinal struct {
	Index int    // position in the category order
	Label string // display label, unused by the engine
}

// Plot returns the category index as a float64.
func (o Ordinal) Plot() float64 { return float64(o.Index) }
