// Package pkg provides the core libraries for plotgrid chart normalization.
//
// # Overview
//
// Plotgrid projects (x,y) domain data into bounded screen coordinates. The
// pkg directory is organized into four main areas:
//
//  1. [series], [scale], [stack], [engine] - Domain logic (data model,
//     linear scaling, stacking, layout computation)
//  2. [dataset], [render] - I/O (dataset import/export, render sinks)
//  3. [cache], [observability] - Infrastructure (memoization, hooks)
//  4. [pipeline] - Orchestration (import → normalize → render)
//
// # Architecture
//
// The typical data flow through plotgrid:
//
//	JSON/TOML dataset file
//	         ↓
//	    [dataset] package (decode points, resolve x values)
//	         ↓
//	    [engine] package (extents, scaling, baseline, stacking)
//	         ↓
//	    [render/sink] package (SVG, JSON, terminal output)
//
// # Quick Start
//
// Normalize a dataset and render it:
//
//	ds := series.FromValues([]float64{1, 2, 3})
//	layout, err := engine.Normalize(ds, engine.Geometry{Width: 800, Height: 600}, engine.KindLine)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := sink.RenderSVG(layout)
//
// Or run the full cached pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "data.json"})
package pkg
