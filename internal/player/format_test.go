package player

import (
	"math"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{10.0, "00:10"},
		{59.99, "00:59"},
		{60, "01:00"},
		{125.0, "02:05"},
		{3725, "62:05"},
		{-3, "00:00"},
		{math.NaN(), "00:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
