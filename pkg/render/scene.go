package render

import "github.com/pentagongym/gymdiag/pkg/geom"

// Margin is the blank border around every figure, in points.
const Margin = 18.0

// Anchor is the horizontal alignment of a text item.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Stroke describes an outline. A zero Width draws nothing.
type Stroke struct {
	Color  string  // hex colour
	Width  float64 // points
	Dashed bool
}

// Item is one drawing primitive of a [Scene]. The concrete types are
// [Rect], [Line], [Polygon] and [Text].
type Item interface {
	item()
}

// Rect is a filled and/or stroked rectangle.
type Rect struct {
	geom.Rect
	Fill   string  // hex colour, empty for none
	Stroke Stroke
	Radius float64 // corner radius in diagram units
}

// Line is an open polyline.
type Line struct {
	Points []geom.Point
	Stroke Stroke
}

// Polygon is a closed outline.
type Polygon struct {
	Points []geom.Point
	Fill   string
	Stroke Stroke
}

// Text is a single line of text vertically centred on At.
type Text struct {
	At     geom.Point
	Text   string
	Size   float64 // points
	Bold   bool
	Italic bool
	Color  string
	Anchor Anchor
}

func (Rect) item()    {}
func (Line) item()    {}
func (Polygon) item() {}
func (Text) item()    {}

// Scene is the device-independent display list for one figure. Geometry is
// in diagram units (y up); text sizes and stroke widths are in points.
// Sinks map units to points with [Scene.ToDevice].
type Scene struct {
	Name       string
	Width      float64 // diagram units
	Height     float64 // diagram units
	Unit       float64 // points per diagram unit
	Background string
	Items      []Item
}

// Size returns the page size in points including the margin.
func (s *Scene) Size() (w, h float64) {
	return s.Width*s.Unit + 2*Margin, s.Height*s.Unit + 2*Margin
}

// ToDevice maps a diagram point to page points with y growing downward.
func (s *Scene) ToDevice(p geom.Point) (x, y float64) {
	return p.X*s.Unit + Margin, (s.Height-p.Y)*s.Unit + Margin
}

// Pt converts a length in diagram units to points.
func (s *Scene) Pt(u float64) float64 { return u * s.Unit }

// Baseline returns the offset in points from the vertical centre of a line
// of text at size pt to its baseline.
func Baseline(size float64) float64 { return size * 0.35 }

func (s *Scene) add(items ...Item) { s.Items = append(s.Items, items...) }
