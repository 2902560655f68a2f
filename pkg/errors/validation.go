package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds diagram names, which become file names.
const maxNameLength = 128

// diagramNameRegex matches names that are safe as file base names on every
// platform: letters, digits, dash, underscore and dot, not starting with a dot.
var diagramNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// ValidateDiagramName validates a diagram name for use as an output file
// base name. It rejects path separators, traversal, control characters and
// hidden-file names.
func ValidateDiagramName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "diagram name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "diagram name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "diagram name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidName, "diagram name cannot contain path separators: %q", name)
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "diagram name cannot contain path traversal sequences (..)")
	}

	if !diagramNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid diagram name: %q", name)
	}

	return nil
}

// ValidateOutputDir validates an output directory path.
// Absolute and relative paths are accepted; empty paths and control
// characters are not.
func ValidateOutputDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidConfig, "output directory cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "output directory contains invalid characters")
		}
	}

	return nil
}

// hexColorRegex matches #RGB and #RRGGBB colours.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidateColor validates a hex colour string as used in palettes.
func ValidateColor(c string) error {
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidDiagram, "invalid colour %q (want #RGB or #RRGGBB)", c)
	}
	return nil
}
