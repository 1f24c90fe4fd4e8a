package pipeline

import (
	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/render"
	"github.com/plotgrid/plotgrid/pkg/render/sink"
)

// RenderFromLayout renders a layout into every requested format. The layout
// is treated as read-only; each sink produces an independent artifact.
func RenderFromLayout(layout engine.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(layout, format, opts)
		if err != nil {
			return nil, errors.Wrap(codeOf(err), err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(layout engine.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(layout,
			sink.WithTheme(render.ThemeByName(opts.Theme)),
			sink.WithBackground(),
		), nil
	case FormatJSON:
		return sink.RenderJSON(layout,
			sink.WithJSONTheme(opts.Theme),
			sink.WithJSONVersion(),
		)
	case FormatTerm:
		return sink.RenderTerm(layout), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}
