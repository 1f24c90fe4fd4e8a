package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
)

// normalizeCommand creates the normalize command for projecting datasets into
// screen coordinates.
func (c *CLI) normalizeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetNormalizeDefaults()

	cmd := &cobra.Command{
		Use:   "normalize [dataset]",
		Short: "Project a dataset into bounded screen coordinates",
		Long: `Project a dataset into bounded screen coordinates.

The normalize command takes a dataset file (JSON or TOML) and computes the
layout for the requested chart kind. The output is a layout.json file that can
be rendered to SVG, JSON, or terminal output using the 'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.runNormalize(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-read the dataset even if cached")

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", opts.Kind, "chart kind: line (default), point, bar, stackedbar")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")
	cmd.Flags().Float64Var(&opts.SlotFill, "slot-fill", 0, "stacked bar slot fill fraction (0,1]")
	cmd.Flags().Float64Var(&opts.Quantize, "quantize", 0, "x step for grouping stacked values (0 = exact match)")

	return cmd
}

// runNormalize imports the dataset, computes the layout, and writes output.
func (c *CLI) runNormalize(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	ds, importHit, err := runner.ImportWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("import %s: %w", opts.Input, err)
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Normalizing %s layout...", opts.Kind))
	spinner.Start()

	layout, normHit, err := runner.NormalizeWithCacheInfo(ctx, ds, opts)
	if err != nil {
		spinner.StopWithError("Normalize failed")
		return fmt.Errorf("normalize: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input))
		outputPath = base + ".layout.json"
	}

	if err := engine.WriteFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Normalize complete")
	printFile(outputPath)
	printStats(ds.Len(), string(layout.Kind), importHit && normHit)
	printNewline()
	printNextStep("Render", "plotgrid render "+outputPath)

	return nil
}
