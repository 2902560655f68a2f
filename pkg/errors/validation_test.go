package errors

import (
	"strings"
	"testing"
)

func TestValidateDiagramName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "pentagon_gym_erd", false},
		{"with dash and dot", "booking-sequence.v2", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"embedded traversal", "a..b", true},
		{"hidden", ".erd", true},
		{"space", "my diagram", true},
		{"control", "erd\n", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDiagramName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDiagramName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "dissertation_diagrams", false},
		{"absolute", "/tmp/out", false},
		{"nested", "docs/figures", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "out\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#FFF", false},
		{"#3498DB", false},
		{"#3498db", false},
		{"3498DB", true},
		{"#3498D", true},
		{"#GGGGGG", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidDiagram, ErrCodeInvalidFormat, ErrCodeInvalidConfig,
		ErrCodeInvalidName, ErrCodeInvalidEngine, ErrCodeUnknownDiagram,
		ErrCodeFileNotFound, ErrCodeRenderFailed, ErrCodeWriteFailed,
		ErrCodeInternal, ErrCodeUnsupported,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code %q", c)
		}
		seen[c] = true
	}
}
