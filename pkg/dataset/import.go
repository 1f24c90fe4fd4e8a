package dataset

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/series"
)

// file is the decoded shape shared by both formats. Exactly one of Points
// and Values must be present.
type file struct {
	Points []point   `json:"points" toml:"points"`
	Values []float64 `json:"values" toml:"values"`
}

type point struct {
	X  any     `json:"x" toml:"x"`
	Y  float64 `json:"y" toml:"y"`
	ID string  `json:"id,omitempty" toml:"id,omitempty"`
}

// ReadJSON decodes a dataset from r.
//
// The input must be a JSON object with either a "points" array or a
// "values" array (see the package documentation for the format). ReadJSON
// returns an INVALID_FORMAT error for malformed JSON and an INVALID_DATASET
// error when the decoded structure cannot form a dataset. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (series.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json dataset")
	}
	return build(f)
}

// ReadTOML decodes a dataset from r using the TOML form of the same
// structure. TOML datetime values become timestamp x coordinates directly.
func ReadTOML(r io.Reader) (series.Dataset, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml dataset")
	}
	return build(f)
}

// Import reads a dataset file at path, detecting the format from the file
// extension: .toml decodes as TOML, everything else as JSON.
//
// A missing file yields a FILE_NOT_FOUND error; decoding failures carry the
// same codes as [ReadJSON] and [ReadTOML], wrapped with the path.
func Import(path string) (series.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	var ds series.Dataset
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		ds, err = ReadTOML(f)
	} else {
		ds, err = ReadJSON(f)
	}
	if err != nil {
		return nil, errors.Wrap(codeOf(err), err, "import %s", path)
	}
	return ds, nil
}

// build converts the decoded file into a dataset, resolving x values and
// assigning category indices in first-seen order.
func build(f file) (series.Dataset, error) {
	if len(f.Points) > 0 && len(f.Values) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset has both points and values")
	}
	if len(f.Points) == 0 && len(f.Values) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "dataset has no points")
	}

	if len(f.Values) > 0 {
		return series.FromValues(f.Values), nil
	}

	ds := make(series.Dataset, len(f.Points))
	cats := map[string]int{}
	for i, p := range f.Points {
		x, err := resolveX(p.X, cats)
		if err != nil {
			return nil, errors.Wrap(codeOf(err), err, "point %d", i)
		}
		ds[i] = series.Point{X: x, Y: series.Number(p.Y), ID: p.ID}
	}
	return ds, nil
}

// resolveX maps a decoded x value to its Plottable form. Strings that parse
// as RFC 3339 timestamps become Time values; other strings are category
// labels indexed by first appearance.
func resolveX(v any, cats map[string]int) (series.Plottable, error) {
	switch x := v.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidDataset, "missing x value")
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err, "x value %q", x.String())
		}
		return series.Number(f), nil
	case float64:
		return series.Number(x), nil
	case int64:
		return series.Integer(int(x)), nil
	case time.Time:
		return series.Time(x), nil
	case string:
		if t, err := time.Parse(time.RFC3339, x); err == nil {
			return series.Time(t), nil
		}
		idx, ok := cats[x]
		if !ok {
			idx = len(cats)
			cats[x] = idx
		}
		return series.Ordinal{Index: idx, Label: x}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidValue, "unsupported x value type %T", v)
	}
}
