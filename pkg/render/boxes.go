package render

import (
	"math"
	"strings"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/geom"
)

const chipsPerRow = 4

// need returns the height a box requires for its text, in diagram units.
func (b *builder) need(box diagram.Box) float64 {
	half := b.pad / 2
	switch box.Kind {
	case diagram.BoxClass:
		h := half + b.lineHeight(nameSize) + half
		if box.Stereotype != "" {
			h += b.lineHeight(stereotypeSize)
		}
		for _, sec := range [][]string{box.Attributes, box.Methods} {
			if len(sec) > 0 {
				h += half + float64(len(sec))*b.lineHeight(memberSize) + half
			}
		}
		return h
	case diagram.BoxEntity:
		return half + b.lineHeight(headerSize) + half +
			float64(len(box.Attributes))*b.lineHeight(rowSize) + half
	case diagram.BoxComponent:
		return half + b.lineHeight(headerSize) +
			float64(len(box.Attributes))*b.lineHeight(bulletSize) + b.pad
	case diagram.BoxLayer:
		rows := math.Ceil(float64(len(box.Attributes)) / chipsPerRow)
		return half + b.lineHeight(layerSize) + half + rows*(b.chipHeight()+half) + half
	case diagram.BoxBanner:
		return b.lineHeight(headerSize) + half
	default: // external, note
		return b.pad + float64(1+len(box.Attributes))*b.lineHeight(smallSize)
	}
}

func (b *builder) chipHeight() float64 {
	return b.lineHeight(chipSize) + b.pad/2
}

func (b *builder) drawBoxes() {
	for _, box := range b.d.Boxes {
		r := b.rects[box.Label]
		sw := b.palette.Lookup(box.Category)
		switch box.Kind {
		case diagram.BoxClass:
			b.classBox(box, r, sw)
		case diagram.BoxEntity:
			b.entityBox(box, r, sw)
		case diagram.BoxComponent:
			b.componentBox(box, r, sw)
		case diagram.BoxLayer:
			b.layerBox(box, r, sw)
		case diagram.BoxExternal:
			b.externalBox(box, r, sw)
		case diagram.BoxBanner:
			b.bannerBox(box, r, sw)
		case diagram.BoxNote:
			b.noteBox(box, r, sw)
		}
	}
}

func (b *builder) frame(r geom.Rect, sw Swatch, dashed bool) {
	b.scene.add(Rect{
		Rect:   r,
		Fill:   sw.Fill,
		Stroke: Stroke{Color: sw.Border, Width: borderWidth, Dashed: dashed},
		Radius: b.radius(r),
	})
}

func (b *builder) rule(r geom.Rect, y, inset float64, color string) {
	b.scene.add(Line{
		Points: []geom.Point{{X: r.X + inset, Y: y}, {X: r.Right() - inset, Y: y}},
		Stroke: Stroke{Color: color, Width: separatorWidth},
	})
}

// classBox draws a UML class: a name compartment with optional stereotype
// and italic abstract name, then attribute and method compartments.
func (b *builder) classBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.frame(r, sw, false)
	half := b.pad / 2
	cx := r.Center().X
	inner := r.W - 2*b.pad
	y := r.Top() - half

	if box.Stereotype != "" {
		lh := b.lineHeight(stereotypeSize)
		b.scene.add(Text{
			At:     geom.Point{X: cx, Y: y - lh/2},
			Text:   b.fit("«"+box.Stereotype+"»", stereotypeSize, false, inner),
			Size:   stereotypeSize,
			Italic: true,
			Color:  sw.Text,
			Anchor: AnchorMiddle,
		})
		y -= lh
	}

	lh := b.lineHeight(nameSize)
	b.scene.add(Text{
		At:     geom.Point{X: cx, Y: y - lh/2},
		Text:   b.fit(box.Label, nameSize, true, inner),
		Size:   nameSize,
		Bold:   true,
		Italic: box.Abstract,
		Color:  sw.Text,
		Anchor: AnchorMiddle,
	})
	y -= lh + half

	sections := []struct {
		lines []string
		color string
	}{
		{box.Attributes, attributeColor},
		{box.Methods, methodColor},
	}
	for _, sec := range sections {
		if len(sec.lines) == 0 {
			continue
		}
		b.rule(r, y, 0, sw.Border)
		y -= half
		lh := b.lineHeight(memberSize)
		for _, line := range sec.lines {
			b.scene.add(Text{
				At:    geom.Point{X: r.X + b.pad, Y: y - lh/2},
				Text:  b.fit(Truncate(line, maxLineRunes), memberSize, false, inner),
				Size:  memberSize,
				Color: sec.color,
			})
			y -= lh
		}
		y -= half
	}
}

// keyColor returns the row highlight for an attribute marked "(PK)" or
// "(FK)".
func keyColor(attr, fill string) (string, bool) {
	switch {
	case strings.HasSuffix(attr, "(PK)"):
		return Tint(fill, pkColor, keyAlpha), true
	case strings.HasSuffix(attr, "(FK)"):
		return Tint(fill, fkColor, keyAlpha), true
	}
	return "", false
}

// entityBox draws an ERD entity with its name over a rule and one row per
// attribute, highlighting primary and foreign keys.
func (b *builder) entityBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.frame(r, sw, false)
	half := b.pad / 2
	inner := r.W - b.pad

	lh := b.lineHeight(headerSize)
	y := r.Top() - half
	b.scene.add(Text{
		At:     geom.Point{X: r.Center().X, Y: y - lh/2},
		Text:   b.fit(box.Label, headerSize, true, inner),
		Size:   headerSize,
		Bold:   true,
		Color:  sw.Text,
		Anchor: AnchorMiddle,
	})
	y -= lh
	b.rule(r, y, half, sw.Border)
	y -= half

	lh = b.lineHeight(rowSize)
	for _, attr := range box.Attributes {
		if c, ok := keyColor(attr, sw.Fill); ok {
			b.scene.add(Rect{
				Rect: geom.Rect{X: r.X + half/2, Y: y - lh, W: r.W - half, H: lh},
				Fill: c,
			})
		}
		b.scene.add(Text{
			At:    geom.Point{X: r.X + half, Y: y - lh/2},
			Text:  b.fit(attr, rowSize, false, inner),
			Size:  rowSize,
			Color: sw.Text,
		})
		y -= lh
	}
}

// componentBox draws a filled architecture component with a bold title and
// one bullet per line.
func (b *builder) componentBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.frame(r, sw, false)
	half := b.pad / 2
	inner := r.W - b.pad

	lh := b.lineHeight(headerSize)
	y := r.Top() - half
	b.scene.add(Text{
		At:     geom.Point{X: r.Center().X, Y: y - lh/2},
		Text:   b.fit(box.Label, headerSize, true, inner),
		Size:   headerSize,
		Bold:   true,
		Color:  sw.Text,
		Anchor: AnchorMiddle,
	})
	y -= lh

	lh = b.lineHeight(bulletSize)
	for _, line := range box.Attributes {
		b.scene.add(Text{
			At:    geom.Point{X: r.X + half, Y: y - lh/2},
			Text:  b.fit("• "+line, bulletSize, false, inner),
			Size:  bulletSize,
			Color: sw.Text,
		})
		y -= lh
	}
}

// layerBox draws a wide layer band with its name in the top-left corner and
// a white chip per component, four chips to a row.
func (b *builder) layerBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.frame(r, sw, false)
	half := b.pad / 2

	lh := b.lineHeight(layerSize)
	y := r.Top() - half
	b.scene.add(Text{
		At:    geom.Point{X: r.X + b.pad, Y: y - lh/2},
		Text:  b.fit(box.Label, layerSize, true, r.W-2*b.pad),
		Size:  layerSize,
		Bold:  true,
		Color: sw.Text,
	})
	y -= lh + half

	chipW := (r.W - 2*b.pad - (chipsPerRow-1)*half) / chipsPerRow
	chipH := b.chipHeight()
	for i, name := range box.Attributes {
		row, col := i/chipsPerRow, i%chipsPerRow
		chip := geom.Rect{
			X: r.X + b.pad + float64(col)*(chipW+half),
			Y: y - float64(row)*(chipH+half) - chipH,
			W: chipW,
			H: chipH,
		}
		b.scene.add(
			Rect{
				Rect:   chip,
				Fill:   white,
				Stroke: Stroke{Color: sw.Border, Width: thinWidth},
				Radius: b.radius(chip),
			},
			Text{
				At:     chip.Center(),
				Text:   b.fit(name, chipSize, false, chipW-half),
				Size:   chipSize,
				Color:  textColor,
				Anchor: AnchorMiddle,
			},
		)
	}
}

// centredLines draws the label and the text lines as a block centred in r.
func (b *builder) centredLines(box diagram.Box, r geom.Rect, sw Swatch, size float64) {
	lh := b.lineHeight(size)
	all := append([]string{box.Label}, box.Attributes...)
	y := r.Center().Y + lh*float64(len(all))/2
	for _, line := range all {
		b.scene.add(Text{
			At:     geom.Point{X: r.Center().X, Y: y - lh/2},
			Text:   b.fit(line, size, false, r.W-b.pad),
			Size:   size,
			Color:  sw.Text,
			Anchor: AnchorMiddle,
		})
		y -= lh
	}
}

// externalBox draws a dashed external system.
func (b *builder) externalBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.frame(r, sw, true)
	b.centredLines(box, r, sw, smallSize)
}

// bannerBox draws a single bold centred line, used for deployment notes.
func (b *builder) bannerBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.scene.add(Rect{
		Rect:   r,
		Fill:   sw.Fill,
		Stroke: Stroke{Color: sw.Border, Width: thinWidth},
		Radius: b.radius(r),
	})
	b.scene.add(Text{
		At:     r.Center(),
		Text:   b.fit(box.Label, headerSize, true, r.W-b.pad),
		Size:   headerSize,
		Bold:   true,
		Color:  sw.Text,
		Anchor: AnchorMiddle,
	})
}

// noteBox draws an annotation with a folded top-right corner, a bold
// heading and left-aligned lines.
func (b *builder) noteBox(box diagram.Box, r geom.Rect, sw Swatch) {
	b.scene.add(Rect{
		Rect:   r,
		Fill:   sw.Fill,
		Stroke: Stroke{Color: sw.Border, Width: separatorWidth},
	})
	fold := min(r.W, r.H) * 0.2
	b.scene.add(Polygon{
		Points: []geom.Point{
			{X: r.Right() - fold, Y: r.Top()},
			{X: r.Right(), Y: r.Top() - fold},
			{X: r.Right(), Y: r.Top()},
		},
		Fill:   noteFold,
		Stroke: Stroke{Color: sw.Border, Width: thinWidth},
	})

	lh := b.lineHeight(smallSize)
	inner := r.W - b.pad - fold
	y := r.Top() - b.pad/2
	for i, line := range append([]string{box.Label}, box.Attributes...) {
		b.scene.add(Text{
			At:    geom.Point{X: r.X + b.pad/2, Y: y - lh/2},
			Text:  b.fit(line, smallSize, i == 0, inner),
			Size:  smallSize,
			Bold:  i == 0,
			Color: sw.Text,
		})
		y -= lh
	}
}
