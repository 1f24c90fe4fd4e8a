package engine

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/plotgrid/plotgrid/pkg/series"
)

func TestLayoutRoundTrip(t *testing.T) {
	ds := series.Dataset{
		{X: series.Number(1), Y: series.Number(2), ID: "first"},
		{X: series.Number(1), Y: series.Number(3)},
		{X: series.Number(2), Y: series.Number(-5)},
	}

	for _, kind := range []Kind{KindLine, KindBar, KindStackedBar} {
		t.Run(string(kind), func(t *testing.T) {
			original, err := Normalize(ds, Geometry{Width: 640, Height: 480}, kind)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}

			path := filepath.Join(t.TempDir(), "layout.json")
			if err := WriteFile(original, path); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			restored, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}

			if !reflect.DeepEqual(original, restored) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", restored, original)
			}
		})
	}
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":"donut","width":10,"height":10}`))
	if err == nil {
		t.Fatal("Unmarshal(): expected error for unknown kind, got nil")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("ReadFile(): expected error for missing file, got nil")
	}
}

func TestBarMarkTopBottom(t *testing.T) {
	up := BarMark{X: 10, Length: 30, Up: true}
	if got := up.Top(60); got != 30 {
		t.Errorf("Top(60) = %v, want 30", got)
	}
	if got := up.Bottom(60); got != 60 {
		t.Errorf("Bottom(60) = %v, want 60", got)
	}

	down := BarMark{X: 10, Length: 20, Up: false}
	if got := down.Top(60); got != 60 {
		t.Errorf("Top(60) = %v, want 60", got)
	}
	if got := down.Bottom(60); got != 80 {
		t.Errorf("Bottom(60) = %v, want 80", got)
	}
}
