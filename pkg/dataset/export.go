package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/series"
)

// codeOf extracts a structured code from err, falling back to INTERNAL for
// plain errors so wrapped errors never lose their code.
func codeOf(err error) errors.Code {
	if c := errors.GetCode(err); c != "" {
		return c
	}
	return errors.ErrCodeInternal
}

type exportPoint struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	ID string  `json:"id,omitempty"`
}

// WriteJSON encodes a dataset as JSON and writes it to w. X values are
// written as their numeric projections, so timestamps and category labels
// round-trip as plain numbers. The output can be re-imported with [ReadJSON].
func WriteJSON(ds series.Dataset, w io.Writer) error {
	xs, ys, err := ds.Project()
	if err != nil {
		return err
	}

	out := file{Points: make([]point, len(ds))}
	for i := range ds {
		out.Points[i] = point{X: xs[i], Y: ys[i], ID: ds[i].ID}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode dataset")
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(ds series.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(ds, f)
}

// Canonical returns a compact, deterministic byte encoding of the dataset's
// projections. Equal datasets always canonicalize identically, which makes
// the result suitable as cache hash input.
func Canonical(ds series.Dataset) ([]byte, error) {
	xs, ys, err := ds.Project()
	if err != nil {
		return nil, err
	}

	pts := make([]exportPoint, len(ds))
	for i := range ds {
		pts[i] = exportPoint{X: xs[i], Y: ys[i], ID: ds[i].ID}
	}
	data, err := json.Marshal(pts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "canonicalize dataset")
	}
	return data, nil
}
