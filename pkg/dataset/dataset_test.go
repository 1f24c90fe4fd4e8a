package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/series"
)

func TestReadJSONPoints(t *testing.T) {
	input := `{
		"points": [
			{"x": 0, "y": 12.5},
			{"x": 1.5, "y": -3, "id": "dip"},
			{"x": 2, "y": 0}
		]
	}`

	ds, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", ds.Len())
	}

	xs, ys, err := ds.Project()
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	wantX := []float64{0, 1.5, 2}
	wantY := []float64{12.5, -3, 0}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Errorf("point %d: got (%v, %v), want (%v, %v)", i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
	if ds[1].ID != "dip" {
		t.Errorf("point 1 ID: got %q, want %q", ds[1].ID, "dip")
	}
}

func TestReadJSONValues(t *testing.T) {
	ds, err := ReadJSON(strings.NewReader(`{"values": [3, 1, 4]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	xs, ys, err := ds.Project()
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	for i, want := range []float64{3, 1, 4} {
		if xs[i] != float64(i) {
			t.Errorf("x[%d]: got %v, want %d", i, xs[i], i)
		}
		if ys[i] != want {
			t.Errorf("y[%d]: got %v, want %v", i, ys[i], want)
		}
	}
}

func TestReadJSONTimestamps(t *testing.T) {
	input := `{"points": [{"x": "2024-03-01T00:00:00Z", "y": 4}]}`
	ds, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	tm, ok := ds[0].X.(series.Time)
	if !ok {
		t.Fatalf("x should decode as series.Time, got %T", ds[0].X)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !time.Time(tm).Equal(want) {
		t.Errorf("timestamp: got %v, want %v", time.Time(tm), want)
	}
}

func TestReadJSONCategories(t *testing.T) {
	// Labels index by first appearance; repeats share an index.
	input := `{"points": [
		{"x": "mon", "y": 1},
		{"x": "tue", "y": 2},
		{"x": "mon", "y": 3}
	]}`
	ds, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	want := []series.Ordinal{
		{Index: 0, Label: "mon"},
		{Index: 1, Label: "tue"},
		{Index: 0, Label: "mon"},
	}
	for i, w := range want {
		o, ok := ds[i].X.(series.Ordinal)
		if !ok {
			t.Fatalf("point %d: x should decode as series.Ordinal, got %T", i, ds[i].X)
		}
		if o != w {
			t.Errorf("point %d: got %+v, want %+v", i, o, w)
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"points": [`, errors.ErrCodeInvalidFormat},
		{"empty object", `{}`, errors.ErrCodeEmptyDataset},
		{"empty arrays", `{"points": [], "values": []}`, errors.ErrCodeEmptyDataset},
		{"both forms", `{"points": [{"x":0,"y":1}], "values": [1]}`, errors.ErrCodeInvalidDataset},
		{"missing x", `{"points": [{"y": 1}]}`, errors.ErrCodeInvalidDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("expected code %s, got %v", tt.code, err)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `
[[points]]
x = 0
y = 12.5

[[points]]
x = 2024-03-01T00:00:00Z
y = 4.0
id = "launch"
`
	ds, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", ds.Len())
	}

	if _, ok := ds[0].X.(series.Integer); !ok {
		t.Errorf("integer x should decode as series.Integer, got %T", ds[0].X)
	}
	if _, ok := ds[1].X.(series.Time); !ok {
		t.Errorf("datetime x should decode as series.Time, got %T", ds[1].X)
	}
	if ds[1].ID != "launch" {
		t.Errorf("point 1 ID: got %q", ds[1].ID)
	}
}

func TestReadTOMLValues(t *testing.T) {
	ds, err := ReadTOML(strings.NewReader(`values = [1.0, 2.0, 3.0]`))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("expected 3 points, got %d", ds.Len())
	}
}

func TestImportDetectsFormat(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(jsonPath, []byte(`{"values": [1, 2]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "data.toml")
	if err := os.WriteFile(tomlPath, []byte("values = [1.0, 2.0, 3.0]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Import(jsonPath)
	if err != nil {
		t.Fatalf("Import json: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("json import: expected 2 points, got %d", ds.Len())
	}

	ds, err = Import(tomlPath)
	if err != nil {
		t.Fatalf("Import toml: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("toml import: expected 3 points, got %d", ds.Len())
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	ds := series.Dataset{
		{X: series.Number(0), Y: series.Number(1.5), ID: "a"},
		{X: series.Number(2), Y: series.Number(-4)},
	}

	var buf bytes.Buffer
	if err := WriteJSON(ds, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Len() != ds.Len() {
		t.Fatalf("round trip changed length: %d != %d", got.Len(), ds.Len())
	}

	gx, gy, _ := got.Project()
	wx, wy, _ := ds.Project()
	for i := range wx {
		if gx[i] != wx[i] || gy[i] != wy[i] {
			t.Errorf("point %d: got (%v, %v), want (%v, %v)", i, gx[i], gy[i], wx[i], wy[i])
		}
	}
	if got[0].ID != "a" {
		t.Errorf("ID lost in round trip: %q", got[0].ID)
	}
}

func TestCanonicalDeterministic(t *testing.T) {
	ds := series.Dataset{
		{X: series.Number(1), Y: series.Number(2)},
		{X: series.Number(3), Y: series.Number(4)},
	}

	c1, err := Canonical(ds)
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	c2, err := Canonical(ds)
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if !bytes.Equal(c1, c2) {
		t.Error("Canonical should be deterministic")
	}

	other := series.Dataset{{X: series.Number(1), Y: series.Number(5)}}
	c3, _ := Canonical(other)
	if bytes.Equal(c1, c3) {
		t.Error("Different datasets should canonicalize differently")
	}
}
