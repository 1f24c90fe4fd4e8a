package scale

import "math"

// Bar is the screen-space extent of a single bar, measured from the
// baseline toward the value. Length is always >= 0; Up reports the
// direction (true for values >= 0, drawn upward from the baseline).
type Bar struct {
	Length float64 `json:"length" bson:"length"`
	Up     bool    `json:"up" bson:"up"`
}

// Top returns the smaller screen y of the bar given its baseline.
func (b Bar) Top(baseline float64) float64 {
	if b.Up {
		return baseline - b.Length
	}
	return baseline
}

// Bottom returns the larger screen y of the bar given its baseline.
func (b Bar) Bottom(baseline float64) float64 {
	if b.Up {
		return baseline
	}
	return baseline + b.Length
}

// BarScaler computes bar extents for magnitude-and-sign data. The positive
// and negative sub-ranges get independent scale factors, so the largest
// magnitude of each sign fills the room available on its side of the
// baseline. Small bars of one sign stay visible even when the opposite sign
// has outliers.
type BarScaler struct {
	Baseline float64 // screen y of domain zero
	positive float64 // screen units per domain unit above the baseline
	negative float64 // screen units per domain unit below the baseline
}

// NewBarScaler builds a scaler for the given y-extent and drawing height.
func NewBarScaler(e Extent, height float64) BarScaler {
	baseline := BaselineY(e, height)
	above := baseline          // room between the top edge and the baseline
	below := height - baseline // room between the baseline and the bottom edge

	return BarScaler{
		Baseline: baseline,
		positive: above / math.Max(e.Max, Epsilon),
		negative: below / math.Max(math.Abs(e.Min), Epsilon),
	}
}

// Bar returns the screen extent for value v.
func (s BarScaler) Bar(v float64) Bar {
	if v >= 0 {
		return Bar{Length: v * s.positive, Up: true}
	}
	return Bar{Length: -v * s.negative, Up: false}
}
