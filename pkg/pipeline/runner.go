package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotgrid/plotgrid/pkg/cache"
	"github.com/plotgrid/plotgrid/pkg/dataset"
	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/observability"
	"github.com/plotgrid/plotgrid/pkg/series"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete import → normalize → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(codeOf(err), err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Import
	importStart := time.Now()
	ds, importHit, err := r.ImportWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(codeOf(err), err, "import")
	}
	result.Stats.ImportTime = time.Since(importStart)
	result.Stats.PointCount = ds.Len()
	result.CacheInfo.ImportHit = importHit

	if canonical, err := dataset.Canonical(ds); err == nil {
		result.DatasetHash = cache.Hash(canonical)
	}

	r.Logger.Info("imported dataset",
		"source", opts.Input,
		"points", ds.Len(),
		"duration", result.Stats.ImportTime)

	// Stage 2: Normalize
	normStart := time.Now()
	layout, normHit, err := r.NormalizeWithCacheInfo(ctx, ds, opts)
	if err != nil {
		return nil, errors.Wrap(codeOf(err), err, "normalize")
	}
	result.Layout = layout
	result.Stats.NormalizeTime = time.Since(normStart)
	result.CacheInfo.NormalizeHit = normHit

	r.Logger.Info("normalized layout",
		"kind", layout.Kind,
		"baseline", layout.Baseline,
		"duration", result.Stats.NormalizeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, errors.Wrap(codeOf(err), err, "render")
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ImportWithCacheInfo loads the dataset with caching and returns cache hit
// info. The cache key covers the source path only, so --refresh must be
// used after editing a file within the dataset TTL.
func (r *Runner) ImportWithCacheInfo(ctx context.Context, opts Options) (series.Dataset, bool, error) {
	if err := opts.ValidateForImport(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnImportStart(ctx, opts.Input)

	cacheKey := r.Keyer.DatasetKey(opts.Input)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if ds, err := dataset.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				observability.Pipeline().OnImportComplete(ctx, opts.Input, ds.Len(), time.Since(start), nil)
				return ds, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	ds, err := dataset.Import(opts.Input)
	observability.Pipeline().OnImportComplete(ctx, opts.Input, ds.Len(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := dataset.WriteJSON(ds, &buf); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLDataset)
		observability.Cache().OnCacheSet(ctx, "dataset", buf.Len())
	}

	return ds, false, nil
}

// Import is a convenience wrapper that calls ImportWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Import(ctx context.Context, opts Options) (series.Dataset, error) {
	ds, _, err := r.ImportWithCacheInfo(ctx, opts)
	return ds, err
}

// NormalizeWithCacheInfo computes a layout with caching and returns cache
// hit info.
func (r *Runner) NormalizeWithCacheInfo(ctx context.Context, ds series.Dataset, opts Options) (engine.Layout, bool, error) {
	if err := opts.ValidateForNormalize(); err != nil {
		return engine.Layout{}, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnNormalizeStart(ctx, opts.Kind, ds.Len())

	canonical, err := dataset.Canonical(ds)
	if err != nil {
		observability.Pipeline().OnNormalizeComplete(ctx, opts.Kind, time.Since(start), err)
		return engine.Layout{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(canonical), opts.LayoutKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if cached, err := engine.Unmarshal(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			observability.Pipeline().OnNormalizeComplete(ctx, opts.Kind, time.Since(start), nil)
			return cached, true, nil
		}
		// Corrupt entry falls through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	kind, _ := engine.ParseKind(opts.Kind)
	layout, err := engine.Normalize(ds, opts.Geometry(), kind, opts.EngineOptions()...)
	observability.Pipeline().OnNormalizeComplete(ctx, opts.Kind, time.Since(start), err)
	if err != nil {
		return engine.Layout{}, false, err
	}

	if data, err := engine.Marshal(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return layout, false, nil
}

// Normalize is a convenience wrapper that calls NormalizeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Normalize(ctx context.Context, ds series.Dataset, opts Options) (engine.Layout, error) {
	layout, _, err := r.NormalizeWithCacheInfo(ctx, ds, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout engine.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	layoutData, err := engine.Marshal(layout)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := RenderFromLayout(layout, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout engine.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func codeOf(err error) errors.Code {
	if c := errors.GetCode(err); c != "" {
		return c
	}
	return errors.ErrCodeInternal
}
