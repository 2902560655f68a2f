package pipeline

import (
	"context"
	"time"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/observability"
	"github.com/pentagongym/gymdiag/pkg/render"
	"github.com/pentagongym/gymdiag/pkg/render/sink"
)

// Artifact is one rendered output of a diagram.
type Artifact struct {
	Format string
	Data   []byte
}

// Render builds the scene for d and produces every requested format, in
// the order of opts.Formats. The first failing format aborts the diagram.
func Render(ctx context.Context, d *diagram.Diagram, opts Options) ([]Artifact, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var buildOpts []render.Option
	pdfOpts := []sink.PDFOption{sink.WithPDFLogger(opts.Logger.With("diagram", d.Name))}
	if opts.Timestamp {
		now := opts.Now()
		buildOpts = append(buildOpts, render.WithTimestamp(now))
		pdfOpts = append(pdfOpts, sink.WithPDFDate(now))
	}

	scene, err := render.Build(d, buildOpts...)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("built scene", "diagram", d.Name, "items", len(scene.Items), "unit", scene.Unit)

	r := &renderer{ctx: ctx, d: d, scene: scene, opts: opts, pdfOpts: pdfOpts}
	artifacts := make([]Artifact, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		observability.Pipeline().OnRenderStart(ctx, d.Name, format)
		start := time.Now()
		data, err := r.render(format)
		observability.Pipeline().OnRenderComplete(ctx, d.Name, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s as %s", d.Name, format)
		}
		artifacts = append(artifacts, Artifact{Format: format, Data: data})
	}
	return artifacts, nil
}

type renderer struct {
	ctx     context.Context
	d       *diagram.Diagram
	scene   *render.Scene
	opts    Options
	pdfOpts []sink.PDFOption

	svg []byte
	dot string
}

func (r *renderer) render(format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		if r.opts.Engine == EngineRsvg {
			return sink.ConvertPNG(r.ctx, r.svgBytes(), r.opts.DPI)
		}
		return sink.RenderPNG(r.scene, sink.WithDPI(r.opts.DPI))
	case FormatPDF:
		if r.opts.Engine == EngineRsvg {
			return sink.ConvertPDF(r.ctx, r.svgBytes())
		}
		return sink.RenderPDF(r.scene, r.pdfOpts...)
	case FormatSVG:
		return r.svgBytes(), nil
	case FormatJSON:
		return sink.RenderJSON(r.d)
	case FormatDOT:
		return []byte(r.dotSource()), nil
	case FormatNodelink:
		return sink.RenderNodelink(r.ctx, r.dotSource())
	default:
		return nil, ValidateFormat(format)
	}
}

func (r *renderer) svgBytes() []byte {
	if r.svg == nil {
		r.svg = sink.RenderSVG(r.scene)
	}
	return r.svg
}

func (r *renderer) dotSource() string {
	if r.dot == "" {
		r.dot = sink.ToDOT(r.d, render.DefaultPalette.With(r.d.Palette))
	}
	return r.dot
}
