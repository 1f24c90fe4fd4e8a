package series

import (
	"math"
	"testing"
	"time"

	"github.com/plotgrid/plotgrid/pkg/errors"
)

func TestProjectPreservesOrder(t *testing.T) {
	ds := Dataset{
		{X: Number(3), Y: Number(30)},
		{X: Number(1), Y: Number(10)},
		{X: Number(2), Y: Number(20)},
	}

	xs, ys, err := ds.Project()
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	wantXs := []float64{3, 1, 2}
	wantYs := []float64{30, 10, 20}
	for i := range wantXs {
		if xs[i] != wantXs[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], wantXs[i])
		}
		if ys[i] != wantYs[i] {
			t.Errorf("ys[%d] = %v, want %v", i, ys[i], wantYs[i])
		}
	}
}

func TestProjectEmptyDataset(t *testing.T) {
	_, _, err := Dataset{}.Project()
	if err == nil {
		t.Fatal("Project() on empty dataset: expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("error code = %v, want EMPTY_DATASET", errors.GetCode(err))
	}
}

func TestProjectRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
	}{
		{
			name: "NaN y",
			ds:   Dataset{{X: Number(1), Y: Number(math.NaN())}},
		},
		{
			name: "positive infinity y",
			ds:   Dataset{{X: Number(1), Y: Number(math.Inf(1))}},
		},
		{
			name: "negative infinity x",
			ds:   Dataset{{X: Number(math.Inf(-1)), Y: Number(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.ds.Project()
			if err == nil {
				t.Fatal("Project(): expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("error code = %v, want INVALID_VALUE", errors.GetCode(err))
			}
		})
	}
}

func TestTimeProjection(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	later := epoch.Add(90 * time.Second)

	if got := Time(epoch).Plot(); got != 0 {
		t.Errorf("Time(epoch).Plot() = %v, want 0", got)
	}
	if got := Time(later).Plot(); got != 90 {
		t.Errorf("Time(epoch+90s).Plot() = %v, want 90", got)
	}

	// Equal values must project equally.
	if Time(later).Plot() != Time(later).Plot() {
		t.Error("Time projection is not deterministic")
	}
}

func TestOrdinalProjection(t *testing.T) {
	a := Ordinal{Index: 2, Label: "march"}
	b := Ordinal{Index: 2, Label: "mar"}

	// Label must not influence the projection.
	if a.Plot() != b.Plot() {
		t.Errorf("Ordinal projections differ: %v vs %v", a.Plot(), b.Plot())
	}
	if a.Plot() != 2 {
		t.Errorf("Ordinal{Index: 2}.Plot() = %v, want 2", a.Plot())
	}
}

func TestFromValues(t *testing.T) {
	ds := FromValues([]float64{5, 7, 9})
	xs, ys, err := ds.Project()
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for i, want := range []float64{0, 1, 2} {
		if xs[i] != want {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want)
		}
	}
	for i, want := range []float64{5, 7, 9} {
		if ys[i] != want {
			t.Errorf("ys[%d] = %v, want %v", i, ys[i], want)
		}
	}
}

func TestFromPairsTruncatesToShorter(t *testing.T) {
	ds := FromPairs([]float64{1, 2, 3}, []float64{10, 20})
	if ds.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ds.Len())
	}
}
