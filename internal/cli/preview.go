package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
	"github.com/plotgrid/plotgrid/pkg/render/sink"
	"github.com/plotgrid/plotgrid/pkg/series"
)

// previewKinds is the cycle order for the 'k' key in the preview TUI.
var previewKinds = []engine.Kind{
	engine.KindLine,
	engine.KindPoint,
	engine.KindBar,
	engine.KindStackedBar,
}

// previewCommand creates the preview command for interactive terminal charts.
func (c *CLI) previewCommand() *cobra.Command {
	var noCache bool
	opts := pipeline.Options{}
	opts.SetNormalizeDefaults()

	cmd := &cobra.Command{
		Use:   "preview [dataset]",
		Short: "Preview a dataset as an interactive terminal chart",
		Long: `Preview a dataset as an interactive terminal chart.

The chart re-renders as the terminal is resized. Press 'k' to cycle through
chart kinds and 'q' to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.runPreview(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-read the dataset even if cached")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", opts.Kind, "initial chart kind: line (default), point, bar, stackedbar")
	cmd.Flags().Float64Var(&opts.Quantize, "quantize", 0, "x step for grouping stacked values (0 = exact match)")

	return cmd
}

// runPreview imports the dataset and hands it to the bubbletea program.
func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	ds, err := runner.Import(ctx, opts)
	if err != nil {
		return fmt.Errorf("import %s: %w", opts.Input, err)
	}

	kind, err := engine.ParseKind(opts.Kind)
	if err != nil {
		return err
	}

	model := newPreviewModel(ds, kind, opts)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if m, ok := final.(previewModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// =============================================================================
// PreviewModel - Interactive chart view
// =============================================================================

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	dataset series.Dataset
	opts    pipeline.Options
	kindIdx int
	cols    int
	rows    int
	grid    string
	err     error
}

func newPreviewModel(ds series.Dataset, kind engine.Kind, opts pipeline.Options) previewModel {
	idx := 0
	for i, k := range previewKinds {
		if k == kind {
			idx = i
		}
	}
	m := previewModel{
		dataset: ds,
		opts:    opts,
		kindIdx: idx,
		cols:    60,
		rows:    16,
	}
	m.render()
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "k":
			m.kindIdx = (m.kindIdx + 1) % len(previewKinds)
			m.render()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width - 6
		m.rows = msg.Height - 8
		if m.cols < 20 {
			m.cols = 20
		}
		if m.rows < 6 {
			m.rows = 6
		}
		m.render()
	}
	return m, nil
}

// render recomputes the layout at the current grid size and rasterizes it.
func (m *previewModel) render() {
	geo := engine.Geometry{Width: float64(m.cols), Height: float64(m.rows)}
	layout, err := engine.Normalize(m.dataset, geo, m.kind(), m.opts.EngineOptions()...)
	if err != nil {
		m.err = err
		m.grid = ""
		return
	}
	m.err = nil
	m.grid = string(sink.RenderTerm(layout, sink.WithTermSize(m.cols, m.rows)))
}

func (m previewModel) kind() engine.Kind {
	return previewKinds[m.kindIdx]
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("plotgrid preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %d points", m.kind(), m.dataset.Len())))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("cannot render %s: %v", m.kind(), m.err)))
		b.WriteString("\n")
	} else {
		frame := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
		b.WriteString(frame.Render(strings.TrimRight(m.grid, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("k cycle kind  q quit"))

	return b.String()
}
