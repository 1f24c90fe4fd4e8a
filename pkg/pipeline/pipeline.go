// Package pipeline provides the core normalization pipeline for plotgrid.
//
// This package implements the complete import → normalize → render pipeline
// that is shared by the CLI and the API server. Centralizing it here keeps
// behavior consistent across entry points and gives both a single caching
// layer.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Import: Decode a dataset from a JSON or TOML file
//  2. Normalize: Project the dataset into bounded screen coordinates
//  3. Render: Generate output artifacts (SVG, JSON, terminal text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "data.json",
//	    Kind:    "bar",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Import only
//	ds, err := runner.Import(ctx, opts)
//
//	// Normalize an in-memory dataset
//	layout, err := runner.Normalize(ctx, ds, opts)
//
//	// Render an existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotgrid/plotgrid/pkg/cache"
	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultKind is the chart kind applied when none is requested.
	DefaultKind = string(engine.KindLine)

	// DefaultWidth is the default frame width in screen units.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in screen units.
	DefaultHeight = 600.0

	// DefaultTheme is the default render palette.
	DefaultTheme = "light"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatTerm = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatTerm: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the normalization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Import options
	Input   string `json:"input,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Normalize options
	Kind     string  `json:"kind,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	SlotFill float64 `json:"slot_fill,omitempty"`
	Quantize float64 `json:"quantize,omitempty"` // stacking key step, 0 = exact x equality

	// Render options
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset hash identifies the imported data for cache keys and API
	// responses.
	DatasetHash string

	// Layout is the normalized coordinate set.
	Layout engine.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount    int
	ImportTime    time.Duration
	NormalizeTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ImportHit    bool // Whether the dataset came from cache
	NormalizeHit bool // Whether the layout came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForImport(); err != nil {
		return err
	}
	if err := o.ValidateForNormalize(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForImport checks required fields for the import stage.
func (o *Options) ValidateForImport() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidDataset, "input is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetNormalizeDefaults sets default values for normalization.
func (o *Options) SetNormalizeDefaults() {
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForNormalize validates and sets defaults for normalization.
func (o *Options) ValidateForNormalize() error {
	o.SetNormalizeDefaults()
	if _, err := engine.ParseKind(o.Kind); err != nil {
		return err
	}
	return o.Geometry().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Geometry returns the target drawing area for normalization.
func (o *Options) Geometry() engine.Geometry {
	return engine.Geometry{Width: o.Width, Height: o.Height}
}

// EngineOptions translates pipeline options into engine options.
func (o *Options) EngineOptions() []engine.Option {
	var opts []engine.Option
	if o.SlotFill > 0 {
		opts = append(opts, engine.WithSlotFill(o.SlotFill))
	}
	if q := o.Quantize; q > 0 {
		opts = append(opts, engine.WithStackKey(func(x float64) float64 {
			return math.Round(x/q) * q
		}))
	}
	return opts
}

// LayoutKeyOpts returns cache key options for the normalize stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Kind:     o.Kind,
		Width:    o.Width,
		Height:   o.Height,
		SlotFill: o.SlotFill,
		Quantize: o.Quantize,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Theme:  o.Theme,
	}
}
