package render

import (
	"maps"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pentagongym/gymdiag/pkg/diagram"
)

// Swatch is the colour set for one box category.
type Swatch struct {
	Fill   string
	Border string
	Text   string
}

// Palette maps box and participant categories to swatches.
type Palette map[string]Swatch

const (
	textColor      = "#212121"
	attributeColor = "#616161"
	methodColor    = "#424242"
	messageColor   = "#2C3E50"
	lifelineAlpha  = 0.7
	pkColor        = "#FFE0B2"
	fkColor        = "#FFCDD2"
	keyAlpha       = 0.6
	activation     = "#BDC3C7"
	noteFold       = "#FBC02D"
	white          = "#FFFFFF"
)

// DefaultPalette is the shared palette of every Pentagon Gymnastics figure.
var DefaultPalette = Palette{
	"class":     {Fill: "#F8F9FA", Border: "#343A40", Text: textColor},
	"abstract":  {Fill: "#E3F2FD", Border: "#343A40", Text: textColor},
	"interface": {Fill: "#FFF3E0", Border: "#343A40", Text: textColor},
	"entity":    {Fill: "#E8F4FD", Border: "#2196F3", Text: textColor},

	"frontend":   {Fill: "#3498DB", Border: "#34495E", Text: white},
	"backend":    {Fill: "#2ECC71", Border: "#34495E", Text: white},
	"database":   {Fill: "#E74C3C", Border: "#34495E", Text: white},
	"external":   {Fill: "#F39C12", Border: "#34495E", Text: white},
	"middleware": {Fill: "#9B59B6", Border: "#34495E", Text: white},
	"security":   {Fill: "#E67E22", Border: "#34495E", Text: white},
	"actor":      {Fill: "#34495E", Border: "#2C3E50", Text: white},
	"system":     {Fill: "#3498DB", Border: "#34495E", Text: white},

	"presentation":    {Fill: "#E8F5E8", Border: "#4CAF50", Text: textColor},
	"gateway":         {Fill: "#FFF3E0", Border: "#FF9800", Text: textColor},
	"business":        {Fill: "#E8F4FD", Border: "#2196F3", Text: textColor},
	"data_access":     {Fill: "#E8F5E8", Border: "#4CAF50", Text: textColor},
	"storage":         {Fill: "#F3E5F5", Border: "#9C27B0", Text: textColor},
	"external_system": {Fill: "#FFEBEE", Border: "#F44336", Text: textColor},
	"deployment":      {Fill: "#E3F2FD", Border: "#1976D2", Text: textColor},
	"note":            {Fill: "#FFF9C4", Border: "#F57F17", Text: messageColor},
	"legend":          {Fill: "#FFFFFF", Border: "#DEE2E6", Text: textColor},
}

var fallbackSwatch = Swatch{Fill: white, Border: "#333333", Text: textColor}

// RelColors are the line colours of relationship kinds.
var RelColors = map[diagram.RelKind]string{
	diagram.RelInheritance:   "#2E7D32",
	diagram.RelRealization:   "#2E7D32",
	diagram.RelComposition:   "#C62828",
	diagram.RelAggregation:   "#F57C00",
	diagram.RelAssociation:   "#1976D2",
	diagram.RelDependency:    "#7B1FA2",
	diagram.RelRelation:      "#333333",
	diagram.RelBidirectional: "#333333",
}

// Lookup returns the swatch for category, or a neutral white box.
func (p Palette) Lookup(category string) Swatch {
	if s, ok := p[category]; ok {
		return s
	}
	return fallbackSwatch
}

// With returns a copy of p where each override replaces a category's fill.
// The border is derived by darkening the fill and the text colour is picked
// for contrast.
func (p Palette) With(overrides map[string]string) Palette {
	if len(overrides) == 0 {
		return p
	}
	out := maps.Clone(p)
	for cat, fill := range overrides {
		out[cat] = SwatchFor(fill)
	}
	return out
}

// SwatchFor derives a complete swatch from a fill colour.
func SwatchFor(fill string) Swatch {
	c, err := colorful.Hex(fill)
	if err != nil {
		return fallbackSwatch
	}
	text := textColor
	if l, _, _ := c.Lab(); l < 0.6 {
		text = white
	}
	return Swatch{Fill: c.Hex(), Border: Darken(fill, 0.35), Text: text}
}

// Darken blends c towards black by amount (0..1) in Lab space.
func Darken(c string, amount float64) string {
	col, err := colorful.Hex(c)
	if err != nil {
		return c
	}
	return col.BlendLab(colorful.Color{}, amount).Clamped().Hex()
}

// Tint blends over onto base with the given opacity, producing the solid
// colour a translucent overlay would show.
func Tint(base, over string, alpha float64) string {
	b, err := colorful.Hex(base)
	if err != nil {
		return over
	}
	o, err := colorful.Hex(over)
	if err != nil {
		return base
	}
	return b.BlendRgb(o, alpha).Clamped().Hex()
}

// RGB255 parses a hex colour into 8-bit channels. Invalid colours yield
// black.
func RGB255(c string) (r, g, b uint8) {
	col, err := colorful.Hex(c)
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}
