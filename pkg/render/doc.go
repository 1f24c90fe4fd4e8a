// Package render turns normalized layouts into output artifacts.
//
// The engine produces geometry only; this package and its sink subpackage
// own everything visual. Renderers live in [sink]:
//
//   - SVG: vector output for documents and browsers
//   - JSON: layout data export for external tools
//   - Term: glyph-based output for terminals
//
// Themes are defined here so every sink shares one palette vocabulary.
//
// [sink]: github.com/plotgrid/plotgrid/pkg/render/sink
package render
