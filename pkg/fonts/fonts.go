// Package fonts provides the embedded Go font family used for raster output
// and text measurement.
//
// The fonts come from golang.org/x/image/font/gofont, so they are compiled
// into the binary and rendering never depends on fonts installed on the host.
// Parsed fonts and sized faces are cached after first use.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Style selects a face of the family.
type Style int

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

// StyleOf maps bold/italic flags to a Style.
func StyleOf(bold, italic bool) Style {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	default:
		return "regular"
	}
}

// FontFamily is the CSS font-family used in SVG output. Viewers without the
// Go fonts fall back to a metric-compatible sans-serif.
const FontFamily = `'Go', 'Helvetica', 'Arial', sans-serif`

// TTF returns the raw TrueType data for s.
func TTF(s Style) []byte {
	switch s {
	case Bold:
		return gobold.TTF
	case Italic:
		return goitalic.TTF
	case BoldItalic:
		return gobolditalic.TTF
	default:
		return goregular.TTF
	}
}

type faceKey struct {
	style Style
	size  float64
	dpi   float64
}

var (
	mu     sync.Mutex
	parsed = map[Style]*opentype.Font{}
	faces  = map[faceKey]font.Face{}
)

// Font returns the parsed font for s.
func Font(s Style) (*opentype.Font, error) {
	mu.Lock()
	defer mu.Unlock()
	return fontLocked(s)
}

func fontLocked(s Style) (*opentype.Font, error) {
	if f, ok := parsed[s]; ok {
		return f, nil
	}
	f, err := opentype.Parse(TTF(s))
	if err != nil {
		return nil, fmt.Errorf("parse %s font: %w", s, err)
	}
	parsed[s] = f
	return f, nil
}

// Face returns a face of style s at sizePt points for a device of dpi dots
// per inch. Faces are shared; callers must not Close them.
func Face(s Style, sizePt, dpi float64) (font.Face, error) {
	mu.Lock()
	defer mu.Unlock()

	key := faceKey{s, sizePt, dpi}
	if f, ok := faces[key]; ok {
		return f, nil
	}
	f, err := fontLocked(s)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new %s face: %w", s, err)
	}
	faces[key] = face
	return face, nil
}

// Measure returns the advance width of text in points when set in style s
// at sizePt. It falls back to an average glyph width if the font cannot be
// loaded.
func Measure(text string, s Style, sizePt float64) float64 {
	face, err := Face(s, sizePt, 72)
	if err != nil {
		return float64(len([]rune(text))) * sizePt * 0.55
	}
	mu.Lock()
	defer mu.Unlock()
	return float64(font.MeasureString(face, text)) / 64
}
