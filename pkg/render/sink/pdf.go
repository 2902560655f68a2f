package sink

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-pdf/fpdf"

	"github.com/pentagongym/gymdiag/pkg/geom"
	"github.com/pentagongym/gymdiag/pkg/render"
)

// DefaultPDFDate is the creation date written into PDFs unless another is
// given, so identical scenes produce identical files.
var DefaultPDFDate = time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	date   time.Time
	logger *log.Logger
}

// WithPDFDate sets the creation and modification date of the document.
func WithPDFDate(t time.Time) PDFOption {
	return func(r *pdfRenderer) { r.date = t }
}

// WithPDFLogger reports characters the PDF cannot show. The core font
// only covers cp1252; anything else is drawn as '.'.
func WithPDFLogger(l *log.Logger) PDFOption {
	return func(r *pdfRenderer) { r.logger = l }
}

// pdfFamily is a core PDF font, so no font data is embedded. Text is
// translated to cp1252, which covers the bullets, pound signs and
// guillemets the diagrams use.
const pdfFamily = "Helvetica"

// RenderPDF draws the scene as a single-page vector PDF sized to the
// figure.
func RenderPDF(s *render.Scene, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{date: DefaultPDFDate}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := s.Size()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetCreationDate(r.date)
	pdf.SetModificationDate(r.date)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(s.Name, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineJoinStyle("round")
	pdf.AddPage()
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	var missing []rune
	tr := func(text string) string {
		for _, c := range unmappable(cp1252, text) {
			if !slices.Contains(missing, c) {
				missing = append(missing, c)
			}
		}
		return cp1252(text)
	}

	if s.Background != "" {
		setFill(pdf, s.Background)
		pdf.Rect(0, 0, w, h, "F")
	}

	for _, it := range s.Items {
		switch it := it.(type) {
		case render.Rect:
			x, y := s.ToDevice(geom.Point{X: it.X, Y: it.Top()})
			style := pdfStyle(pdf, it.Fill, it.Stroke)
			if style == "" {
				continue
			}
			if it.Radius > 0 {
				pdf.RoundedRect(x, y, s.Pt(it.W), s.Pt(it.H), s.Pt(it.Radius), "1234", style)
			} else {
				pdf.Rect(x, y, s.Pt(it.W), s.Pt(it.H), style)
			}
		case render.Line:
			if pdfStyle(pdf, "", it.Stroke) == "" || len(it.Points) < 2 {
				continue
			}
			for i, p := range it.Points {
				x, y := s.ToDevice(p)
				if i == 0 {
					pdf.MoveTo(x, y)
				} else {
					pdf.LineTo(x, y)
				}
			}
			pdf.DrawPath("D")
		case render.Polygon:
			style := pdfStyle(pdf, it.Fill, it.Stroke)
			if style == "" {
				continue
			}
			pts := make([]fpdf.PointType, len(it.Points))
			for i, p := range it.Points {
				pts[i].X, pts[i].Y = s.ToDevice(p)
			}
			pdf.Polygon(pts, style)
		case render.Text:
			pdfText(pdf, s, it, tr)
		}
	}

	if len(missing) > 0 && r.logger != nil {
		r.logger.Warn("pdf text outside cp1252 drawn as '.'", "scene", s.Name, "chars", string(missing))
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// unmappable returns the runes of text that tr cannot encode, in order of
// first appearance.
func unmappable(tr func(string) string, text string) []rune {
	var out []rune
	for _, c := range text {
		if c < 0x80 || slices.Contains(out, c) {
			continue
		}
		if tr(string(c)) == "." {
			out = append(out, c)
		}
	}
	return out
}

// pdfStyle sets the fill and draw state for an item and returns the fpdf
// style string, or "" when there is nothing to paint.
func pdfStyle(pdf *fpdf.Fpdf, fill string, st render.Stroke) string {
	style := ""
	if fill != "" {
		setFill(pdf, fill)
		style += "F"
	}
	if st.Width > 0 && st.Color != "" {
		r, g, b := render.RGB255(st.Color)
		pdf.SetDrawColor(int(r), int(g), int(b))
		pdf.SetLineWidth(st.Width)
		if st.Dashed {
			pdf.SetDashPattern(dashPattern, 0)
		} else {
			pdf.SetDashPattern(nil, 0)
		}
		style += "D"
	}
	return style
}

func setFill(pdf *fpdf.Fpdf, c string) {
	r, g, b := render.RGB255(c)
	pdf.SetFillColor(int(r), int(g), int(b))
}

func pdfText(pdf *fpdf.Fpdf, s *render.Scene, t render.Text, tr func(string) string) {
	style := ""
	if t.Bold {
		style += "B"
	}
	if t.Italic {
		style += "I"
	}
	pdf.SetFont(pdfFamily, style, t.Size)
	r, g, b := render.RGB255(t.Color)
	pdf.SetTextColor(int(r), int(g), int(b))

	text := tr(t.Text)
	x, y := s.ToDevice(t.At)
	switch t.Anchor {
	case render.AnchorMiddle:
		x -= pdf.GetStringWidth(text) / 2
	case render.AnchorEnd:
		x -= pdf.GetStringWidth(text)
	}
	pdf.Text(x, y+render.Baseline(t.Size), text)
}
