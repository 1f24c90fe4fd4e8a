package scale

import (
	"math"
	"testing"
)

func TestBarScalerMixedSign(t *testing.T) {
	// Extent [-10, 20] over height 90: baseline at 60, leaving 60px above
	// and 30px below. Both sides fill their room exactly at the extremes.
	s := NewBarScaler(Extent{Min: -10, Max: 20}, 90)

	if !approx(s.Baseline, 60) {
		t.Fatalf("Baseline = %v, want 60", s.Baseline)
	}

	top := s.Bar(20)
	if !top.Up || !approx(top.Length, 60) {
		t.Errorf("Bar(20) = %+v, want {Length: 60, Up: true}", top)
	}
	bottom := s.Bar(-10)
	if bottom.Up || !approx(bottom.Length, 30) {
		t.Errorf("Bar(-10) = %+v, want {Length: 30, Up: false}", bottom)
	}
}

func TestBarScalerIndependentSides(t *testing.T) {
	// A positive outlier must not shrink negative bars: each sign scales
	// within its own sub-range.
	s := NewBarScaler(Extent{Min: -1, Max: 1000}, 100)

	neg := s.Bar(-1)
	if neg.Up {
		t.Fatal("Bar(-1) direction = up, want down")
	}
	below := 100 - s.Baseline
	if neg.Length != below {
		t.Errorf("Bar(-1).Length = %v, want %v (fills the room below)", neg.Length, below)
	}
}

func TestBarScalerProportionalWithinSign(t *testing.T) {
	s := NewBarScaler(Extent{Min: -8, Max: 16}, 120)

	half := s.Bar(8)
	full := s.Bar(16)
	if math.Abs(half.Length*2-full.Length) > 1e-9 {
		t.Errorf("Bar(8).Length = %v, want half of Bar(16).Length = %v", half.Length, full.Length)
	}
}

func TestBarScalerAllPositive(t *testing.T) {
	s := NewBarScaler(Extent{Min: 2, Max: 10}, 100)

	// Baseline at the bottom; every bar extends upward.
	if s.Baseline != 100 {
		t.Fatalf("Baseline = %v, want 100", s.Baseline)
	}
	b := s.Bar(10)
	if !b.Up || b.Length != 100 {
		t.Errorf("Bar(10) = %+v, want {Length: 100, Up: true}", b)
	}
	if got := s.Bar(5).Length; got != 50 {
		t.Errorf("Bar(5).Length = %v, want 50", got)
	}
}

func TestBarScalerZeroExtent(t *testing.T) {
	// All-zero data must produce finite, zero-length bars.
	s := NewBarScaler(Extent{Min: 0, Max: 0}, 100)

	b := s.Bar(0)
	if math.IsNaN(b.Length) || math.IsInf(b.Length, 0) {
		t.Fatalf("Bar(0).Length = %v, want finite", b.Length)
	}
	if b.Length != 0 {
		t.Errorf("Bar(0).Length = %v, want 0", b.Length)
	}
}

func TestBarTopBottom(t *testing.T) {
	up := Bar{Length: 30, Up: true}
	if got := up.Top(60); got != 30 {
		t.Errorf("up.Top(60) = %v, want 30", got)
	}
	if got := up.Bottom(60); got != 60 {
		t.Errorf("up.Bottom(60) = %v, want 60", got)
	}

	down := Bar{Length: 20, Up: false}
	if got := down.Top(60); got != 60 {
		t.Errorf("down.Top(60) = %v, want 60", got)
	}
	if got := down.Bottom(60); got != 80 {
		t.Errorf("down.Bottom(60) = %v, want 80", got)
	}
}
