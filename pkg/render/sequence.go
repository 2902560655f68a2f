package render

import (
	"math"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/geom"
)

// drawSequence draws participant heads, dashed lifelines, activation bars
// and messages. Heads are drawn last so lifelines start under them.
func (b *builder) drawSequence() {
	seq := b.d.Sequence
	heads := make(map[string]geom.Rect, len(seq.Participants))
	for _, p := range seq.Participants {
		heads[p.Name] = b.headRect(p)
	}

	for _, p := range seq.Participants {
		sw := b.palette.Lookup(p.Category)
		b.scene.add(Line{
			Points: []geom.Point{{X: p.X, Y: heads[p.Name].Y}, {X: p.X, Y: seq.Bottom}},
			Stroke: Stroke{Color: Tint(white, sw.Fill, lifelineAlpha), Width: borderWidth, Dashed: true},
		})
	}

	barW := b.d.Width * 0.016
	for _, a := range seq.Activations {
		p, _ := b.d.Participant(a.Participant)
		b.scene.add(Rect{
			Rect:   geom.Rect{X: p.X - barW/2, Y: a.Top - a.Height, W: barW, H: a.Height},
			Fill:   activation,
			Stroke: Stroke{Color: messageColor, Width: thinWidth},
		})
	}

	for _, m := range seq.Messages {
		b.message(m)
	}

	for _, p := range seq.Participants {
		r := heads[p.Name]
		sw := b.palette.Lookup(p.Category)
		b.frame(r, sw, false)
		b.scene.add(Text{
			At:     r.Center(),
			Text:   p.Name,
			Size:   headSize,
			Bold:   true,
			Color:  sw.Text,
			Anchor: AnchorMiddle,
		})
	}
}

// headRect sizes a participant head to its name, centred on the lifeline
// at HeadY.
func (b *builder) headRect(p diagram.Participant) geom.Rect {
	w := max(10, b.textWidth(p.Name, headSize, true)+2*b.pad)
	h := max(4, b.lineHeight(headSize)+b.pad)
	return geom.Rect{X: p.X - w/2, Y: b.d.Sequence.HeadY - h/2, W: w, H: h}
}

func (b *builder) message(m diagram.Message) {
	from, _ := b.d.Participant(m.From)
	to, _ := b.d.Participant(m.To)
	size := b.units(8)
	line := Stroke{Color: messageColor, Width: lineWidth, Dashed: m.Kind == diagram.MsgReturn}
	head := Stroke{Color: messageColor, Width: lineWidth}
	lh := b.lineHeight(messageSize)

	if m.Kind == diagram.MsgSelf || m.From == m.To {
		w, h := b.d.Width*0.07, b.d.Height*0.014
		x := from.X
		b.scene.add(
			Line{
				Points: []geom.Point{{X: x, Y: m.Y}, {X: x + w, Y: m.Y}, {X: x + w, Y: m.Y - h}, {X: x, Y: m.Y - h}},
				Stroke: line,
			},
			arrow(geom.Point{X: x, Y: m.Y - h}, math.Pi, size, head),
			Text{
				At:    geom.Point{X: x + w + b.units(4), Y: m.Y - h/2},
				Text:  m.Text,
				Size:  messageSize,
				Color: messageColor,
			},
		)
		return
	}

	start := geom.Point{X: from.X, Y: m.Y}
	end := geom.Point{X: to.X, Y: m.Y}
	angle := geom.Angle(start, end)
	b.scene.add(Line{Points: []geom.Point{start, end}, Stroke: line})
	if m.Kind == diagram.MsgSync {
		b.scene.add(Polygon{Points: geom.Triangle(end, angle, size), Fill: messageColor, Stroke: head})
	} else {
		b.scene.add(arrow(end, angle, size, head))
	}
	b.scene.add(Text{
		At:     geom.Point{X: (start.X + end.X) / 2, Y: m.Y + lh/2 + b.units(1)},
		Text:   m.Text,
		Size:   messageSize,
		Color:  messageColor,
		Anchor: AnchorMiddle,
	})
}
