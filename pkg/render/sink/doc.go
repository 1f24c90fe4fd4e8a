// Package sink provides output format renderers for normalized layouts.
//
// # Overview
//
// A "sink" transforms a computed [engine.Layout] into a final artifact.
// This package provides renderers for:
//
//   - SVG: vector graphics for documents and browsers
//   - JSON: layout data export for external tools
//   - Term: character-grid output for terminals
//
// Every sink consumes the layout's screen coordinates as-is. No scaling
// math happens in this package, so all sinks agree on geometry.
//
// # SVG Output
//
// [RenderSVG] draws the layout according to its kind: a polyline with
// markers for line charts, markers alone for point charts, sign-colored
// rects for bars, and per-segment rects for stacked bars. Basic usage:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithTheme(render.Dark),
//	    sink.WithBackground(),
//	)
//
// # JSON Output
//
// [RenderJSON] wraps the layout in a small envelope carrying the theme name
// and optionally the generating version. The envelope's layout field decodes
// back into an [engine.Layout] for round-trip rendering.
//
// # Terminal Output
//
// [RenderTerm] resamples the layout onto a rune grid, defaulting to 60x16
// cells. It is the preview backend and also serves as the "txt" format of
// the render command.
//
// # Adding New Formats
//
//  1. Create a renderer function: func RenderFoo(l engine.Layout, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Read positions from l.Points, l.Bars, or l.Groups depending on l.Kind
//  4. Register the format in internal/cli for command-line support
//
// [engine.Layout]: github.com/plotgrid/plotgrid/pkg/engine.Layout
package sink
