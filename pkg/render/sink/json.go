package sink

import (
	"encoding/json"

	"github.com/plotgrid/plotgrid/pkg/buildinfo"
	"github.com/plotgrid/plotgrid/pkg/engine"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme   string
	version bool
}

// WithJSONTheme records the theme name in the output for round-trip
// rendering. The layout itself is theme-independent.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONVersion stamps the output with the generating version.
func WithJSONVersion() JSONOption { return func(r *jsonRenderer) { r.version = true } }

type jsonOutput struct {
	Layout  engine.Layout `json:"layout"`
	Theme   string        `json:"theme,omitempty"`
	Version string        `json:"version,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. This is
// the primary data interchange format, enabling:
//
//   - Integration with external drawing tools
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//
// RenderJSON returns an error only if JSON marshaling fails. It does not
// modify l and is safe to call concurrently.
func RenderJSON(l engine.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Layout: l, Theme: r.theme}
	if r.version {
		out.Version = buildinfo.Version
	}
	return json.MarshalIndent(out, "", "  ")
}
