package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 31)

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "- id: int", 30, "- id: int"},
		{"exactly limit", strings.Repeat("b", 30), 30, strings.Repeat("b", 30)},
		{"over limit", long, 30, strings.Repeat("a", 27) + "..."},
		{"multibyte", "£" + strings.Repeat("x", 40), 30, "£" + strings.Repeat("x", 26) + "..."},
		{"tiny limit", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if utf8.RuneCountInString(got) > tt.n {
				t.Errorf("result has %d runes, limit %d", utf8.RuneCountInString(got), tt.n)
			}
		})
	}
}

func TestFit(t *testing.T) {
	b := &builder{scene: &Scene{Unit: 1}}

	if got := b.fit("Member", 10, false, 1000); got != "Member" {
		t.Errorf("fit() = %q, want unchanged", got)
	}

	label := "SubscriptionPaymentController"
	width := b.textWidth(label, 10, false) / 2
	got := b.fit(label, 10, false, width)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("fit() = %q, want trailing ellipsis", got)
	}
	if b.textWidth(got, 10, false) > width {
		t.Errorf("fit() = %q is wider than %v", got, width)
	}
}

func TestLines(t *testing.T) {
	got := lines("Pentagon Gymnastics\nUML Class Diagram")
	if len(got) != 2 || got[1] != "UML Class Diagram" {
		t.Errorf("lines() = %q", got)
	}
}
