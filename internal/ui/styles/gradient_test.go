package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_KeepsVisibleText(t *testing.T) {
	tests := []string{"", "a", "waves-lite", "Café 東京 🎵"}

	for _, text := range tests {
		out := Gradient(text, T().Primary, T().Secondary, true)
		assert.Equal(t, text, ansi.Strip(out))
	}
}

func TestGraphemes_CombinedClusters(t *testing.T) {
	// e + combining acute accent is one cluster
	assert.Len(t, graphemes("e\u0301a"), 2)
	assert.Empty(t, graphemes(""))
}

func TestToColorful(t *testing.T) {
	c := toColorful(lipgloss.Color("#ff0000"))
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)

	assert.Equal(t, fallbackGray, toColorful(lipgloss.Color("240")))
}

func TestTheme_StylesBuiltOnce(t *testing.T) {
	th := T()
	assert.Same(t, th.S(), th.S())
}
