package scale

import (
	"testing"

	"github.com/plotgrid/plotgrid/pkg/errors"
)

func TestComputeExtent(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want Extent
	}{
		{
			name: "ascending",
			vals: []float64{1, 2, 3},
			want: Extent{Min: 1, Max: 3},
		},
		{
			name: "unordered",
			vals: []float64{5, -2, 7, 0},
			want: Extent{Min: -2, Max: 7},
		},
		{
			name: "single value",
			vals: []float64{4},
			want: Extent{Min: 4, Max: 4},
		},
		{
			name: "all equal",
			vals: []float64{2, 2, 2},
			want: Extent{Min: 2, Max: 2},
		},
		{
			name: "all negative",
			vals: []float64{-3, -1, -2},
			want: Extent{Min: -3, Max: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeExtent(tt.vals)
			if err != nil {
				t.Fatalf("ComputeExtent() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeExtent() = %+v, want %+v", got, tt.want)
			}
			if got.Min > got.Max {
				t.Errorf("invariant violated: Min %v > Max %v", got.Min, got.Max)
			}
		})
	}
}

func TestComputeExtentEmpty(t *testing.T) {
	_, err := ComputeExtent(nil)
	if err == nil {
		t.Fatal("ComputeExtent(nil): expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("error code = %v, want EMPTY_DATASET", errors.GetCode(err))
	}
}

func TestExtentRange(t *testing.T) {
	tests := []struct {
		name   string
		extent Extent
		want   float64
	}{
		{
			name:   "normal range",
			extent: Extent{Min: 1, Max: 3},
			want:   2,
		},
		{
			name:   "degenerate applies epsilon floor",
			extent: Extent{Min: 5, Max: 5},
			want:   Epsilon,
		},
		{
			name:   "tiny range below epsilon",
			extent: Extent{Min: 0, Max: Epsilon / 10},
			want:   Epsilon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.extent.Range(); got != tt.want {
				t.Errorf("Range() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtentDegenerate(t *testing.T) {
	if !(Extent{Min: 5, Max: 5}).Degenerate() {
		t.Error("Degenerate() = false for min == max")
	}
	if (Extent{Min: 1, Max: 2}).Degenerate() {
		t.Error("Degenerate() = true for min != max")
	}
}

func TestExtentContains(t *testing.T) {
	e := Extent{Min: -1, Max: 1}
	for _, v := range []float64{-1, 0, 1} {
		if !e.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{-1.5, 1.5} {
		if e.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
}
