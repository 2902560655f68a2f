package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pentagongym/gymdiag/pkg/fonts"
	"github.com/pentagongym/gymdiag/pkg/geom"
	"github.com/pentagongym/gymdiag/pkg/render"
)

// dashPattern is the on/off length of dashed strokes in points.
var dashPattern = []float64{6, 4}

// RenderSVG draws the scene as a standalone SVG document. User units are
// points. The output depends only on the scene, so rendering the same
// scene twice yields identical bytes.
func RenderSVG(s *render.Scene) []byte {
	w, h := s.Size()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", EscapeXML(s.Name))
	if s.Background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background)
	}
	fmt.Fprintf(&buf, `  <g font-family="%s">`+"\n", EscapeXML(fonts.FontFamily))

	for _, it := range s.Items {
		switch it := it.(type) {
		case render.Rect:
			svgRect(&buf, s, it)
		case render.Line:
			svgPath(&buf, s, "polyline", it.Points, "none", it.Stroke)
		case render.Polygon:
			svgPath(&buf, s, "polygon", it.Points, it.Fill, it.Stroke)
		case render.Text:
			svgText(&buf, s, it)
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func svgRect(buf *bytes.Buffer, s *render.Scene, r render.Rect) {
	x, y := s.ToDevice(geom.Point{X: r.X, Y: r.Top()})
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, x, y, s.Pt(r.W), s.Pt(r.H))
	if r.Radius > 0 {
		fmt.Fprintf(buf, ` rx="%.2f"`, s.Pt(r.Radius))
	}
	fmt.Fprintf(buf, ` fill="%s"%s/>`+"\n", fillAttr(r.Fill), strokeAttrs(r.Stroke))
}

func svgPath(buf *bytes.Buffer, s *render.Scene, elem string, pts []geom.Point, fill string, st render.Stroke) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		x, y := s.ToDevice(p)
		coords[i] = fmt.Sprintf("%.2f,%.2f", x, y)
	}
	fmt.Fprintf(buf, `    <%s points="%s" fill="%s"%s stroke-linejoin="round"/>`+"\n",
		elem, strings.Join(coords, " "), fillAttr(fill), strokeAttrs(st))
}

func svgText(buf *bytes.Buffer, s *render.Scene, t render.Text) {
	x, y := s.ToDevice(t.At)
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.1f" fill="%s"`, x, y+render.Baseline(t.Size), t.Size, t.Color)
	if t.Bold {
		buf.WriteString(` font-weight="bold"`)
	}
	if t.Italic {
		buf.WriteString(` font-style="italic"`)
	}
	switch t.Anchor {
	case render.AnchorMiddle:
		buf.WriteString(` text-anchor="middle"`)
	case render.AnchorEnd:
		buf.WriteString(` text-anchor="end"`)
	}
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(t.Text))
}

func fillAttr(c string) string {
	if c == "" {
		return "none"
	}
	return c
}

func strokeAttrs(st render.Stroke) string {
	if st.Width <= 0 || st.Color == "" {
		return ""
	}
	out := fmt.Sprintf(` stroke="%s" stroke-width="%.2f"`, st.Color, st.Width)
	if st.Dashed {
		out += fmt.Sprintf(` stroke-dasharray="%g,%g"`, dashPattern[0], dashPattern[1])
	}
	return out
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
