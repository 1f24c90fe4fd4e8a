package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/render"
)

func lineLayout() engine.Layout {
	return engine.Layout{
		Kind:     engine.KindLine,
		Width:    100,
		Height:   90,
		Baseline: 60,
		Points: []engine.Position{
			{X: 0, Y: 90},
			{X: 50, Y: 60},
			{X: 100, Y: 0, ID: "peak"},
		},
	}
}

func TestRenderSVGLine(t *testing.T) {
	svg := string(RenderSVG(lineLayout()))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not a complete SVG document:\n%s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 100.0 90.0"`) {
		t.Errorf("viewBox should match layout geometry:\n%s", svg)
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("line layout should render a polyline")
	}
	if strings.Count(svg, "<circle") != 3 {
		t.Errorf("expected 3 markers, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, `id="pt-peak"`) {
		t.Error("point IDs should carry through to markers")
	}
	if !strings.Contains(svg, `y1="60.00"`) {
		t.Error("baseline should be drawn at the layout baseline")
	}
}

func TestRenderSVGPointOmitsPolyline(t *testing.T) {
	l := lineLayout()
	l.Kind = engine.KindPoint

	svg := string(RenderSVG(l))
	if strings.Contains(svg, "<polyline") {
		t.Error("point layout should not render a polyline")
	}
	if strings.Count(svg, "<circle") != 3 {
		t.Errorf("expected 3 markers, got %d", strings.Count(svg, "<circle"))
	}
}

func TestRenderSVGBars(t *testing.T) {
	l := engine.Layout{
		Kind:     engine.KindBar,
		Width:    100,
		Height:   90,
		Baseline: 60,
		Bars: []engine.BarMark{
			{X: 25, Length: 30, Up: true},
			{X: 75, Length: 20, Up: false},
		},
	}

	svg := string(RenderSVG(l, WithTheme(render.Dark)))
	if strings.Count(svg, "<rect") != 2 {
		t.Fatalf("expected 2 bar rects, got %d", strings.Count(svg, "<rect"))
	}
	// Positive bar uses Fill, negative uses FillAlt
	if !strings.Contains(svg, render.Dark.Fill) {
		t.Error("positive bar should use the theme fill")
	}
	if !strings.Contains(svg, render.Dark.FillAlt) {
		t.Error("negative bar should use the alternate fill")
	}
	// Upward bar: rect starts at baseline-length and spans length
	if !strings.Contains(svg, `y="30.00"`) {
		t.Errorf("upward bar top should be at 30:\n%s", svg)
	}
}

func TestRenderSVGStacked(t *testing.T) {
	l := engine.Layout{
		Kind:     engine.KindStackedBar,
		Width:    200,
		Height:   100,
		Baseline: 100,
		Groups: []engine.StackedGroup{
			{
				Key: 1, Sum: 5, Width: 80, Offset: 10,
				Segments: []engine.SegmentMark{
					{Value: 2, Y0: 100, Y1: 60},
					{Value: 3, Y0: 60, Y1: 0},
				},
			},
		},
	}

	svg := string(RenderSVG(l))
	if strings.Count(svg, "<rect") != 2 {
		t.Fatalf("expected 2 segment rects, got %d", strings.Count(svg, "<rect"))
	}
	if !strings.Contains(svg, `x="10.00"`) {
		t.Error("segments should start at the group offset")
	}
	if !strings.Contains(svg, `width="80.00"`) {
		t.Error("segments should span the group width")
	}
}

func TestRenderSVGBackground(t *testing.T) {
	l := lineLayout()

	plain := string(RenderSVG(l))
	if strings.Contains(plain, render.Light.Background) {
		t.Error("background should be transparent by default")
	}

	filled := string(RenderSVG(l, WithBackground()))
	if !strings.Contains(filled, render.Light.Background) {
		t.Error("WithBackground should fill the frame")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(lineLayout(), WithJSONTheme("dark"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", out.Theme, "dark")
	}
	if out.Layout.Kind != engine.KindLine {
		t.Errorf("Kind = %q, want %q", out.Layout.Kind, engine.KindLine)
	}
	if len(out.Layout.Points) != 3 {
		t.Errorf("Points count = %d, want 3", len(out.Layout.Points))
	}
	if out.Layout.Baseline != 60 {
		t.Errorf("Baseline = %v, want 60", out.Layout.Baseline)
	}
	if out.Version != "" {
		t.Errorf("Version should be omitted without WithJSONVersion, got %q", out.Version)
	}
}

func TestRenderJSONVersion(t *testing.T) {
	data, err := RenderJSON(lineLayout(), WithJSONVersion())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Version == "" {
		t.Error("WithJSONVersion should stamp the output")
	}
}

func TestRenderTermGrid(t *testing.T) {
	out := string(RenderTerm(lineLayout(), WithTermSize(20, 8)))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 20 {
			t.Errorf("row %d: expected 20 cols, got %d", i, len([]rune(line)))
		}
	}

	if !strings.ContainsRune(out, glyphPoint) {
		t.Error("line layout should plot point glyphs")
	}
	if !strings.ContainsRune(out, glyphBaseline) {
		t.Error("baseline row should be drawn")
	}
}

func TestRenderTermBars(t *testing.T) {
	l := engine.Layout{
		Kind:     engine.KindBar,
		Width:    100,
		Height:   90,
		Baseline: 60,
		Bars: []engine.BarMark{
			{X: 25, Length: 30, Up: true},
			{X: 75, Length: 20, Up: false},
		},
	}

	out := string(RenderTerm(l, WithTermSize(10, 9)))
	if !strings.ContainsRune(out, glyphBar) {
		t.Error("bar layout should draw bar glyphs")
	}
}
