package pipeline

import (
	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/layout"
	"github.com/wiremaphq/wiremap/pkg/render/dot"
	"github.com/wiremaphq/wiremap/pkg/render/wire"
)

// RenderFromLayout renders every requested format from a document and its
// computed layout.
func RenderFromLayout(doc *document.Document, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(doc, l, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(doc *document.Document, l layout.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderWireSVG(doc, l, opts), nil

	case FormatDOT:
		return []byte(dot.ToDOT(doc)), nil

	case FormatPNG:
		data, err := dot.RenderPNG(dot.ToDOT(doc))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailure, err, "render png")
		}
		return data, nil

	case FormatJSON:
		data, err := document.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailure, err, "marshal document")
		}
		return data, nil

	default:
		return nil, ValidateFormat(format)
	}
}

func renderWireSVG(doc *document.Document, l layout.Layout, opts Options) []byte {
	style, _ := wire.StyleByName(opts.Style)
	renderOpts := []wire.Option{
		wire.WithStyle(style),
		wire.WithCurve(geometry.Curve(opts.Curve)),
		wire.WithStepRadius(opts.StepRadius),
		wire.WithArrowSize(opts.ArrowSize),
	}
	if opts.Headings {
		renderOpts = append(renderOpts, wire.WithColumnHeadings())
	}
	return wire.RenderSVG(doc, l, renderOpts...)
}
