package sink

import (
	"bytes"
	"fmt"

	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/render"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme      render.Theme
	pointR     float64
	strokeW    float64
	background bool
}

// WithTheme selects the color palette. The default is [render.Light].
func WithTheme(t render.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithPointRadius sets the marker radius for point and line charts.
func WithPointRadius(radius float64) SVGOption {
	return func(r *svgRenderer) {
		if radius > 0 {
			r.pointR = radius
		}
	}
}

// WithBackground fills the frame with the theme background color instead of
// leaving it transparent.
func WithBackground() SVGOption { return func(r *svgRenderer) { r.background = true } }

// RenderSVG produces an SVG document for a layout. The drawing depends only
// on the layout's screen coordinates; no scaling math happens here, so the
// output is faithful to the engine for every kind.
func RenderSVG(l engine.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{theme: render.Light, pointR: 3, strokeW: 1.5}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if r.background {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			l.Width, l.Height, r.theme.Background)
	}

	renderBaseline(&buf, l, r.theme)

	switch l.Kind {
	case engine.KindLine:
		renderPolyline(&buf, l, r)
		renderMarkers(&buf, l.Points, r)
	case engine.KindPoint:
		renderMarkers(&buf, l.Points, r)
	case engine.KindBar:
		renderBars(&buf, l, r)
	case engine.KindStackedBar:
		renderStacks(&buf, l, r)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBaseline(buf *bytes.Buffer, l engine.Layout, t render.Theme) {
	fmt.Fprintf(buf, `  <line x1="0" y1="%.2f" x2="%.1f" y2="%.2f" stroke="%s" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
		l.Baseline, l.Width, l.Baseline, t.Baseline)
}

func renderPolyline(buf *bytes.Buffer, l engine.Layout, r svgRenderer) {
	if len(l.Points) < 2 {
		return
	}
	buf.WriteString(`  <polyline fill="none" stroke="` + r.theme.Stroke + `" `)
	fmt.Fprintf(buf, `stroke-width="%.1f" points="`, r.strokeW)
	for i, p := range l.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", p.X, p.Y)
	}
	buf.WriteString(`"/>` + "\n")
}

func renderMarkers(buf *bytes.Buffer, pts []engine.Position, r svgRenderer) {
	for _, p := range pts {
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"`, p.X, p.Y, r.pointR, r.theme.Stroke)
		if p.ID != "" {
			fmt.Fprintf(buf, ` id="pt-%s"`, p.ID)
		}
		buf.WriteString("/>\n")
	}
}

// renderBars draws each bar as a rect between its top and bottom screen
// extents. Bars share a uniform width derived from the frame so adjacent
// marks never overlap.
func renderBars(buf *bytes.Buffer, l engine.Layout, r svgRenderer) {
	if len(l.Bars) == 0 {
		return
	}
	w := barWidth(l.Width, len(l.Bars))
	for _, b := range l.Bars {
		top := b.Top(l.Baseline)
		height := b.Bottom(l.Baseline) - top
		fill := r.theme.Fill
		if !b.Up {
			fill = r.theme.FillAlt
		}
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			b.X-w/2, top, w, height, fill)
	}
}

func renderStacks(buf *bytes.Buffer, l engine.Layout, r svgRenderer) {
	for _, g := range l.Groups {
		for _, s := range g.Segments {
			y0, y1 := s.Y0, s.Y1
			if y1 > y0 {
				y0, y1 = y1, y0
			}
			fill := r.theme.Fill
			if s.Value < 0 {
				fill = r.theme.FillAlt
			}
			fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
				g.Offset, y1, g.Width, y0-y1, fill, r.theme.Background)
		}
	}
}

// barWidth allots each bar a slot of the frame width and fills most of it,
// mirroring the stacked-bar slot convention.
func barWidth(frame float64, n int) float64 {
	return frame / float64(n) * engine.DefaultSlotFill
}
