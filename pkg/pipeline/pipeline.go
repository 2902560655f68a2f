// Package pipeline provides the diagram generation pipeline for gymdiag.
//
// This package implements the validate → build → render → write loop shared
// by every CLI command. By centralizing this logic, the default invocation,
// the generate subcommand and the interactive picker behave identically.
//
// # Architecture
//
// For each diagram the pipeline:
//
//  1. Validates the diagram table
//  2. Builds a scene with [render.Build]
//  3. Renders every requested format with the sink package
//  4. Writes <output_dir>/<name>.<ext>
//
// Diagrams are processed one at a time. A failing diagram is logged and
// recorded in the [Report] and the run continues with the next one.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	report, err := runner.Generate(ctx, catalog.All(), pipeline.Options{
//	    OutputDir: "dissertation_diagrams",
//	    Formats:   []string{"png", "pdf"},
//	    Timestamp: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := report.Err(); err != nil {
//	    // at least one diagram failed
//	}
//
// [render.Build]: github.com/pentagongym/gymdiag/pkg/render.Build
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultOutputDir is where figures are written when no directory is given.
	DefaultOutputDir = catalog.OutputDir

	// DefaultDPI is the raster resolution of PNG output.
	DefaultDPI = sink.DefaultDPI

	// DefaultEngine draws PNG and PDF natively.
	DefaultEngine = EngineNative
)

// Format constants for output formats.
const (
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatSVG      = "svg"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatNodelink = "nodelink"
)

// Engine constants select how PNG and PDF are produced.
const (
	EngineNative = "native" // gg and fpdf, no external tools
	EngineRsvg   = "rsvg"   // SVG converted with rsvg-convert
)

// DefaultFormats is one raster and one vector file per diagram.
var DefaultFormats = []string{FormatPNG, FormatPDF}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:      true,
	FormatPDF:      true,
	FormatSVG:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatNodelink: true,
}

// ValidEngines is the set of supported render engines.
var ValidEngines = map[string]bool{
	EngineNative: true,
	EngineRsvg:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a generation run.
type Options struct {
	OutputDir string   `json:"output_dir,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	DPI       float64  `json:"dpi,omitempty"`
	Engine    string   `json:"engine,omitempty"`

	// Timestamp embeds a "Generated:" footer in diagrams that ask for one.
	// Leave it off for byte-identical output across runs.
	Timestamp bool `json:"timestamp,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger         `json:"-"`
	Now      func() time.Time    `json:"-"`
	Progress func(DiagramResult) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidEngine, "invalid engine: %q (must be one of: native, rsvg)", engine)
	}
	return nil
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates while keeping the first occurrence's position.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// FileName returns the output file name of a diagram in a format.
func FileName(name, format string) string {
	if format == FormatNodelink {
		return name + ".nodelink.svg"
	}
	return name + "." + format
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %g", o.DPI)
	}
	o.validated = true
	return nil
}

// SetDefaults fills every unset field.
func (o *Options) SetDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// String summarises the options for debug logging.
func (o *Options) String() string {
	return fmt.Sprintf("dir=%s formats=%s dpi=%g engine=%s timestamp=%t",
		o.OutputDir, strings.Join(o.Formats, ","), o.DPI, o.Engine, o.Timestamp)
}
