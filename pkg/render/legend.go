package render

import (
	"strings"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/geom"
)

// LegendItems returns the entries drawn for d's legend: the declared items,
// or defaults derived from what the diagram uses. ERDs explain the key
// highlights, class diagrams their relationship kinds, everything else its
// categories.
func LegendItems(d *diagram.Diagram) []diagram.LegendItem {
	if d.Legend != nil && len(d.Legend.Items) > 0 {
		return d.Legend.Items
	}
	switch {
	case d.Kind == diagram.KindERD:
		fill := DefaultPalette.Lookup("entity").Fill
		return []diagram.LegendItem{
			{Label: "Primary Key (PK)", Color: Tint(fill, pkColor, keyAlpha)},
			{Label: "Foreign Key (FK)", Color: Tint(fill, fkColor, keyAlpha)},
		}
	case d.Kind == diagram.KindClass && len(d.Relationships) > 0:
		var items []diagram.LegendItem
		for _, k := range d.RelKindsUsed() {
			items = append(items, diagram.LegendItem{Label: humanize(string(k)), Rel: k})
		}
		return items
	}
	var items []diagram.LegendItem
	for _, c := range d.Categories() {
		items = append(items, diagram.LegendItem{Label: humanize(c), Category: c})
	}
	return items
}

// humanize turns "data_access" into "Data access".
func humanize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (b *builder) drawLegend() {
	lg := b.d.Legend
	if lg == nil {
		return
	}
	items := LegendItems(b.d)
	sw := b.palette.Lookup("legend")
	half := b.pad / 2
	titleH := 0.0
	if lg.Title != "" {
		titleH = b.lineHeight(headerSize)
	}
	rowH := b.lineHeight(legendSize) * 1.4
	need := half + titleH + float64(len(items))*rowH + half
	r := geom.Rect{X: lg.X, Y: lg.Y, W: lg.W, H: lg.H}.Grow(need)

	b.frame(r, sw, false)
	y := r.Top() - half
	if lg.Title != "" {
		b.scene.add(Text{
			At:     geom.Point{X: r.Center().X, Y: y - titleH/2},
			Text:   b.fit(lg.Title, headerSize, true, r.W-b.pad),
			Size:   headerSize,
			Bold:   true,
			Color:  sw.Text,
			Anchor: AnchorMiddle,
		})
		y -= titleH
	}

	keyW := b.lineHeight(legendSize) * 1.6
	keyH := b.lineHeight(legendSize) * 0.8
	for _, it := range items {
		cy := y - rowH/2
		key := geom.Rect{X: r.X + b.pad, Y: cy - keyH/2, W: keyW, H: keyH}
		b.legendKey(it, key)
		b.scene.add(Text{
			At:    geom.Point{X: key.Right() + half, Y: cy},
			Text:  b.fit(it.Label, legendSize, false, r.Right()-key.Right()-b.pad),
			Size:  legendSize,
			Color: sw.Text,
		})
		y -= rowH
	}
}

// legendKey draws the sample for one legend entry inside key.
func (b *builder) legendKey(it diagram.LegendItem, key geom.Rect) {
	switch {
	case it.Rel != "":
		mid := key.Center().Y
		from := geom.Point{X: key.X, Y: mid}
		to := geom.Point{X: key.Right(), Y: mid}
		b.connector(from, to, it.Rel, false, key.H*0.6)
	case it.Color != "":
		b.scene.add(Rect{
			Rect:   key,
			Fill:   it.Color,
			Stroke: Stroke{Color: Darken(it.Color, 0.35), Width: thinWidth},
		})
	default:
		sw := b.palette.Lookup(it.Category)
		b.scene.add(Rect{
			Rect:   key,
			Fill:   sw.Fill,
			Stroke: Stroke{Color: sw.Border, Width: thinWidth},
			Radius: b.radius(key),
		})
	}
}
