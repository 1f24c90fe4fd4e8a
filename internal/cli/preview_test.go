package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
	"github.com/plotgrid/plotgrid/pkg/series"
)

func newTestPreview(t *testing.T) previewModel {
	t.Helper()
	ds := series.FromValues([]float64{1, 5, 3})
	opts := pipeline.Options{}
	opts.SetNormalizeDefaults()
	return newPreviewModel(ds, engine.KindLine, opts)
}

func TestPreviewModelRendersGrid(t *testing.T) {
	m := newTestPreview(t)

	if m.err != nil {
		t.Fatalf("initial render failed: %v", m.err)
	}
	if m.grid == "" {
		t.Fatal("initial render should produce a grid")
	}
	if !strings.Contains(m.View(), "plotgrid preview") {
		t.Error("view should include the title")
	}
}

func TestPreviewModelCyclesKind(t *testing.T) {
	m := newTestPreview(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	updated := next.(previewModel)

	if updated.kind() != engine.KindPoint {
		t.Errorf("kind after 'k' = %v, want point", updated.kind())
	}
	if updated.grid == "" {
		t.Error("cycling kind should re-render the grid")
	}
}

func TestPreviewModelQuits(t *testing.T) {
	m := newTestPreview(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("'q' should produce a quit command")
	}
}

func TestPreviewModelResizes(t *testing.T) {
	m := newTestPreview(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := next.(previewModel)

	if updated.cols != 114 || updated.rows != 32 {
		t.Errorf("grid size = %dx%d, want 114x32", updated.cols, updated.rows)
	}

	// Tiny windows clamp to a usable minimum
	next, _ = updated.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	updated = next.(previewModel)
	if updated.cols != 20 || updated.rows != 6 {
		t.Errorf("clamped size = %dx%d, want 20x6", updated.cols, updated.rows)
	}
}
