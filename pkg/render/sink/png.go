package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pentagongym/gymdiag/pkg/fonts"
	"github.com/pentagongym/gymdiag/pkg/geom"
	"github.com/pentagongym/gymdiag/pkg/render"
)

// DefaultDPI is the raster resolution when none is given.
const DefaultDPI = 150.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi float64
}

// WithDPI sets the raster resolution in dots per inch (default 150).
func WithDPI(dpi float64) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// RenderPNG rasterises the scene with the embedded Go fonts.
func RenderPNG(s *render.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %g", r.dpi)
	}

	px := r.dpi / 72
	w, h := s.Size()
	dc := gg.NewContext(int(w*px+0.5), int(h*px+0.5))
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetColor(hexColor(s.Background, color.White))
	dc.Clear()

	dev := func(p geom.Point) (float64, float64) {
		x, y := s.ToDevice(p)
		return x * px, y * px
	}

	for _, it := range s.Items {
		switch it := it.(type) {
		case render.Rect:
			x, y := dev(geom.Point{X: it.X, Y: it.Top()})
			rw, rh := s.Pt(it.W)*px, s.Pt(it.H)*px
			if it.Radius > 0 {
				dc.DrawRoundedRectangle(x, y, rw, rh, s.Pt(it.Radius)*px)
			} else {
				dc.DrawRectangle(x, y, rw, rh)
			}
			paint(dc, it.Fill, it.Stroke, px)
		case render.Line:
			for i, p := range it.Points {
				x, y := dev(p)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			paint(dc, "", it.Stroke, px)
		case render.Polygon:
			for _, p := range it.Points {
				dc.LineTo(dev(p))
			}
			dc.ClosePath()
			paint(dc, it.Fill, it.Stroke, px)
		case render.Text:
			face, err := fonts.Face(fonts.StyleOf(it.Bold, it.Italic), it.Size, r.dpi)
			if err != nil {
				return nil, err
			}
			dc.SetFontFace(face)
			dc.SetColor(hexColor(it.Color, color.Black))
			x, y := dev(it.At)
			dc.DrawStringAnchored(it.Text, x, y+render.Baseline(it.Size)*px, anchorX(it.Anchor), 0)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// paint fills then strokes the current path and clears it.
func paint(dc *gg.Context, fill string, st render.Stroke, px float64) {
	if fill != "" {
		dc.SetColor(hexColor(fill, color.White))
		dc.FillPreserve()
	}
	if st.Width > 0 && st.Color != "" {
		dc.SetColor(hexColor(st.Color, color.Black))
		dc.SetLineWidth(st.Width * px)
		if st.Dashed {
			dc.SetDash(dashPattern[0]*px, dashPattern[1]*px)
		} else {
			dc.SetDash()
		}
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

func anchorX(a render.Anchor) float64 {
	switch a {
	case render.AnchorMiddle:
		return 0.5
	case render.AnchorEnd:
		return 1
	default:
		return 0
	}
}

func hexColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
