package render

import (
	"time"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/geom"
)

// DefaultFigureWidth is the figure width in inches when a diagram does not
// set one.
const DefaultFigureWidth = 16.0

// TimestampFormat is the layout of the "Generated:" footer.
const TimestampFormat = "2006-01-02 15:04:05"

// Text sizes in points.
const (
	titleSize      = 20.0
	nameSize       = 16.0
	stereotypeSize = 12.0
	memberSize     = 11.0
	headerSize     = 12.0
	rowSize        = 9.0
	bulletSize     = 10.0
	layerSize      = 14.0
	chipSize       = 10.0
	smallSize      = 9.0
	cardSize       = 8.0
	multSize       = 10.0
	messageSize    = 9.0
	headSize       = 10.0
	legendSize     = 10.0
	timestampSize  = 8.0
)

// Stroke widths in points.
const (
	borderWidth    = 2.0
	separatorWidth = 1.5
	lineWidth      = 1.5
	thinWidth      = 1.0
)

// markerScale sizes relationship terminators relative to the larger side
// of the coordinate space.
const markerScale = 0.011

// Option configures [Build].
type Option func(*options)

type options struct {
	now     time.Time
	palette Palette
}

// WithTimestamp embeds a "Generated: <t>" footer in diagrams that ask for
// one. Without this option no timestamp is drawn and output is
// reproducible.
func WithTimestamp(t time.Time) Option {
	return func(o *options) { o.now = t }
}

// WithPalette replaces the base palette. Per-diagram overrides still apply.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

type builder struct {
	d       *diagram.Diagram
	scene   *Scene
	palette Palette
	rects   map[string]geom.Rect
	pad     float64
}

// Build turns a diagram table into a scene: boxes grown to fit their text,
// relationships routed between box edges, sequence lifelines and messages,
// then the legend, title and optional timestamp. The diagram is validated
// first and is not modified.
func Build(d *diagram.Diagram, opts ...Option) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	o := options{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&o)
	}

	fw := d.FigureWidth
	if fw == 0 {
		fw = DefaultFigureWidth
	}

	scene := &Scene{
		Name:       d.Name,
		Width:      d.Width,
		Height:     d.Height,
		Unit:       fw * 72 / d.Width,
		Background: white,
	}
	b := &builder{
		d:       d,
		scene:   scene,
		palette: o.palette.With(d.Palette),
		rects:   make(map[string]geom.Rect, len(d.Boxes)),
	}
	b.pad = b.units(6)

	b.layoutBoxes()
	if d.Sequence != nil {
		b.drawSequence()
	}
	b.drawBoxes()
	b.drawRelationships()
	b.drawLegend()
	b.drawTitle()
	if d.Timestamp && !o.now.IsZero() {
		b.drawTimestamp(o.now)
	}
	return b.scene, nil
}

// units converts points to diagram units.
func (b *builder) units(pt float64) float64 { return pt / b.scene.Unit }

func (b *builder) radius(r geom.Rect) float64 {
	return min(b.units(4), r.W/8, r.H/8)
}

func (b *builder) layoutBoxes() {
	for _, box := range b.d.Boxes {
		b.rects[box.Label] = box.Rect().Grow(b.need(box))
	}
}

func (b *builder) drawTitle() {
	if b.d.Title == "" {
		return
	}
	lh := b.lineHeight(titleSize)
	top := b.d.Height - b.units(4)
	for i, line := range lines(b.d.Title) {
		b.scene.add(Text{
			At:     geom.Point{X: b.d.Width / 2, Y: top - lh*(float64(i)+0.5)},
			Text:   line,
			Size:   titleSize,
			Bold:   true,
			Color:  textColor,
			Anchor: AnchorMiddle,
		})
	}
}

func (b *builder) drawTimestamp(now time.Time) {
	b.scene.add(Text{
		At:     geom.Point{X: b.d.Width - b.units(4), Y: b.units(4) + b.lineHeight(timestampSize)/2},
		Text:   "Generated: " + now.Format(TimestampFormat),
		Size:   timestampSize,
		Italic: true,
		Color:  "#555555",
		Anchor: AnchorEnd,
	})
}

// label draws s centred on at over a white backdrop so it stays legible
// where it crosses a line.
func (b *builder) label(at geom.Point, s string, size float64, color string) {
	if s == "" {
		return
	}
	w := b.textWidth(s, size, false) + b.units(4)
	h := b.lineHeight(size)
	b.scene.add(
		Rect{Rect: geom.Rect{X: at.X - w/2, Y: at.Y - h/2, W: w, H: h}, Fill: white, Radius: h / 4},
		Text{At: at, Text: s, Size: size, Color: color, Anchor: AnchorMiddle},
	)
}
