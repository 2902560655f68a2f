package render

import (
	"testing"

	"github.com/pentagongym/gymdiag/pkg/diagram"
)

func TestPaletteLookup(t *testing.T) {
	if got := DefaultPalette.Lookup("database"); got.Fill != "#E74C3C" || got.Text != white {
		t.Errorf("Lookup(database) = %+v", got)
	}
	if got := DefaultPalette.Lookup("no-such-category"); got != fallbackSwatch {
		t.Errorf("Lookup(unknown) = %+v, want fallback", got)
	}
}

func TestPaletteWith(t *testing.T) {
	p := DefaultPalette.With(map[string]string{"entity": "#1A237E"})

	got := p.Lookup("entity")
	if got.Fill != "#1a237e" {
		t.Errorf("Fill = %q, want #1a237e", got.Fill)
	}
	if got.Text != white {
		t.Errorf("Text = %q, want white on a dark fill", got.Text)
	}
	if DefaultPalette.Lookup("entity").Fill != "#E8F4FD" {
		t.Error("With modified the base palette")
	}
	if same := DefaultPalette.With(nil); same.Lookup("entity") != DefaultPalette.Lookup("entity") {
		t.Error("With(nil) changed the palette")
	}
}

func TestSwatchFor(t *testing.T) {
	tests := []struct {
		fill string
		text string
	}{
		{"#FFFFFF", textColor},
		{"#FFF9C4", textColor},
		{"#000000", white},
		{"#2C3E50", white},
		{"not-a-colour", textColor},
	}

	for _, tt := range tests {
		t.Run(tt.fill, func(t *testing.T) {
			if got := SwatchFor(tt.fill); got.Text != tt.text {
				t.Errorf("SwatchFor(%q).Text = %q, want %q", tt.fill, got.Text, tt.text)
			}
		})
	}
}

func TestTint(t *testing.T) {
	if got := Tint("#FFFFFF", "#000000", 0.5); got != "#808080" {
		t.Errorf("Tint() = %q, want #808080", got)
	}
	if got := Tint("#FFFFFF", "#FF0000", 0); got != "#ffffff" {
		t.Errorf("Tint(alpha 0) = %q, want #ffffff", got)
	}
	if got := Tint("bad", "#FF0000", 0.5); got != "#FF0000" {
		t.Errorf("Tint(bad base) = %q, want overlay", got)
	}
}

func TestDarken(t *testing.T) {
	r0, g0, b0 := RGB255("#3498DB")
	r1, g1, b1 := RGB255(Darken("#3498DB", 0.35))
	if int(r1)+int(g1)+int(b1) >= int(r0)+int(g0)+int(b0) {
		t.Errorf("Darken did not darken: %d,%d,%d", r1, g1, b1)
	}
}

func TestRGB255(t *testing.T) {
	r, g, b := RGB255("#FF8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB255() = %d,%d,%d", r, g, b)
	}
	if r, g, b := RGB255("oops"); r != 0 || g != 0 || b != 0 {
		t.Errorf("RGB255(invalid) = %d,%d,%d", r, g, b)
	}
}

func TestRelColorsCoverKinds(t *testing.T) {
	for _, k := range diagram.RelKinds {
		if RelColors[k] == "" {
			t.Errorf("no colour for %s", k)
		}
	}
}
