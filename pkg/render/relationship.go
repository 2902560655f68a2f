package render

import (
	"math"
	"strings"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/geom"
)

const arrowSpread = 0.45

// markerSize is the terminator size for this diagram in units.
func (b *builder) markerSize() float64 {
	return max(b.d.Width, b.d.Height) * markerScale
}

func (b *builder) drawRelationships() {
	size := b.markerSize()
	for _, rel := range b.d.Relationships {
		from, to := geom.Connect(b.rects[rel.From], b.rects[rel.To])
		b.connector(from, to, rel.Kind, rel.Dashed, size)

		angle := geom.Angle(from, to)
		color := RelColors[rel.Kind]
		if rel.FromMult != "" {
			at := geom.Beside(geom.Along(from, to, size*2.5), angle, size*1.5)
			b.label(at, rel.FromMult, multSize, color)
		}
		if rel.ToMult != "" {
			at := geom.Beside(geom.Along(to, from, size*2.5), angle, size*1.5)
			b.label(at, rel.ToMult, multSize, color)
		}
		if mid := midText(rel); mid != "" {
			b.label(from.Mid(to), mid, cardSize, textColor)
		}
	}
}

func midText(rel diagram.Relationship) string {
	var parts []string
	for _, s := range []string{rel.Cardinality, rel.Label} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}

// connector draws the line from one endpoint to the other with the
// terminators of kind. The line is shortened so it meets the marker
// outline rather than running through it.
func (b *builder) connector(from, to geom.Point, kind diagram.RelKind, dashed bool, size float64) {
	color := RelColors[kind]
	if color == "" {
		color = fallbackSwatch.Border
	}
	stroke := Stroke{
		Color:  color,
		Width:  lineWidth,
		Dashed: dashed || kind == diagram.RelRealization || kind == diagram.RelDependency,
	}
	head := Stroke{Color: color, Width: lineWidth}
	angle := geom.Angle(from, to)
	start, end := from, to
	var marks []Item

	switch kind {
	case diagram.RelInheritance, diagram.RelRealization:
		tri := geom.Triangle(to, angle, size)
		end = tri[1].Mid(tri[2])
		marks = append(marks, Polygon{Points: tri, Fill: white, Stroke: head})
	case diagram.RelComposition, diagram.RelAggregation:
		fill := white
		if kind == diagram.RelComposition {
			fill = color
		}
		dia := geom.Diamond(from, angle, size*0.8)
		start = dia[2]
		marks = append(marks, Polygon{Points: dia, Fill: fill, Stroke: head})
	case diagram.RelAssociation, diagram.RelDependency:
		marks = append(marks, arrow(to, angle, size, head))
	case diagram.RelBidirectional:
		marks = append(marks, arrow(to, angle, size, head), arrow(from, angle+math.Pi, size, head))
	}

	b.scene.add(Line{Points: []geom.Point{start, end}, Stroke: stroke})
	b.scene.add(marks...)
}

// arrow returns an open arrowhead with its tip at tip.
func arrow(tip geom.Point, angle, size float64, s Stroke) Line {
	l, r := geom.ArrowHead(tip, angle, size, arrowSpread)
	return Line{Points: []geom.Point{l, tip, r}, Stroke: s}
}
