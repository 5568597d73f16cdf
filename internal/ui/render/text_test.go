package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string untouched", "Blue in Green", "Blue in Green"},
		{"control characters dropped", "So\x07 What\x1b", "So What"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "Kind\u00a0of Blue", "Kind of Blue"},
		{"invalid utf-8 dropped", "Fla\xffmenco", "Flamenco"},
		{"unicode kept", "Café 東京", "Café 東京"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"wide characters", "東京東京", 5, "東京…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padding needed", "hello", 10, "hello     "},
		{"exact width", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.input, tt.width); got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	for _, input := range []string{"hi", "hello world", "東京東京東京"} {
		got := Fit(input, 8)
		if w := runewidth.StringWidth(got); w != 8 {
			t.Errorf("Fit(%q, 8) width = %d, want 8 (%q)", input, w, got)
		}
	}
}

func TestRow(t *testing.T) {
	left := "song.wav"
	right := lipgloss.NewStyle().Bold(true).Render("00:10")

	got := Row(left, right, 30)
	if !strings.HasPrefix(got, left) || !strings.HasSuffix(got, right) {
		t.Fatalf("Row() = %q, want %q ... %q", got, left, right)
	}
	if w := lipgloss.Width(got); w != 30 {
		t.Errorf("Row() visible width = %d, want 30", w)
	}

	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row() too narrow = %q, want one-space gap", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(4); got != "────" {
		t.Errorf("Separator(4) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
