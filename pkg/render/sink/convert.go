package sink

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ConvertPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ConvertPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ConvertPNG converts SVG bytes to PNG using rsvg-convert at the given
// resolution. SVG user units are points, so the zoom is dpi/72.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ConvertPNG(ctx context.Context, svg []byte, dpi float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.4f", dpi/72))
}

// HasRsvg reports whether rsvg-convert is on PATH.
func HasRsvg() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !HasRsvg() {
		return nil, fmt.Errorf("%s export with the rsvg engine requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
