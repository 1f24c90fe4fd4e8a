package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
)

// layoutSuffix marks a pre-computed layout file produced by 'normalize'.
const layoutSuffix = ".layout.json"

// renderCommand creates the render command for generating chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetNormalizeDefaults()
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render [dataset|layout.json]",
		Short: "Render a dataset or layout to SVG, JSON, or terminal output",
		Long: `Render a dataset or layout to SVG, JSON, or terminal output.

When given a dataset file (JSON or TOML), the full pipeline runs: import,
normalize, render. When given a .layout.json file produced by 'normalize',
only the render stage runs.

Multiple formats can be requested with a comma-separated list, e.g.
-f svg,json,txt. Each format is written to its own file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, txt (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-read the dataset even if cached")

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", opts.Kind, "chart kind: line (default), point, bar, stackedbar")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")
	cmd.Flags().Float64Var(&opts.SlotFill, "slot-fill", 0, "stacked bar slot fill fraction (0,1]")
	cmd.Flags().Float64Var(&opts.Quantize, "quantize", 0, "x step for grouping stacked values (0 = exact match)")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render palette: light (default), dark")

	return cmd
}

// runRender produces artifacts for every requested format and writes them out.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	track := newProgress(c.Logger)

	artifacts, pointCount, kind, cached, err := c.produceArtifacts(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, input)
	written := make([]string, 0, len(artifacts))
	for _, format := range sortedFormats(artifacts) {
		path := outputPath(output, base, format, len(opts.Formats))
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		written = append(written, path)
	}

	track.done(fmt.Sprintf("Rendered %d format(s)", len(written)))

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(pointCount, kind, cached)

	return nil
}

// produceArtifacts runs the full pipeline for a dataset input, or just the
// render stage for a pre-computed layout file.
func (c *CLI) produceArtifacts(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (map[string][]byte, int, string, bool, error) {
	if strings.HasSuffix(input, layoutSuffix) {
		layout, err := engine.ReadFile(input)
		if err != nil {
			return nil, 0, "", false, fmt.Errorf("load layout %s: %w", input, err)
		}
		artifacts, hit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
		if err != nil {
			return nil, 0, "", false, fmt.Errorf("render: %w", err)
		}
		return artifacts, len(layout.Points), string(layout.Kind), hit, nil
	}

	opts.Input = input
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, 0, "", false, err
	}
	cached := result.CacheInfo.ImportHit && result.CacheInfo.NormalizeHit && result.CacheInfo.RenderHit
	return result.Artifacts, result.Stats.PointCount, string(result.Layout.Kind), cached, nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, the input path is used with its extension stripped;
// a trailing ".layout" marker is stripped as well so rendered files sit
// next to the original dataset name.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file path for one rendered format. An explicit output
// path wins when only a single format was requested.
func outputPath(output, base, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	return base + "." + format
}

func sortedFormats(artifacts map[string][]byte) []string {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
