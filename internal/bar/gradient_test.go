// Tests for gradient precomputation and HSL conversion.
// Related: internal/bar/gradient.go
// Tags: gradient, truecolor, hsl
package bar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGradient_SampleCount(t *testing.T) {
	g := NewGradient(210, 0.6, 80)
	assert.Equal(t, 80, g.Width(), "one color sample per column")
}

func TestNewGradient_MinimumWidth(t *testing.T) {
	g := NewGradient(210, 0.6, 0)
	assert.Equal(t, 1, g.Width())
}

func TestGradient_PaintWrapsEveryRune(t *testing.T) {
	g := NewGradient(120, 0.5, 10)
	out := g.Paint([]rune("abcde"))

	assert.Equal(t, 5, strings.Count(out, "\033[48;2;"))
	for _, c := range "abcde" {
		assert.Contains(t, out, string(c))
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := map[string]struct {
		h, s, l  float64
		expected [3]uint8
	}{
		"black":        {h: 0, s: 0, l: 0, expected: [3]uint8{0, 0, 0}},
		"white":        {h: 0, s: 0, l: 1, expected: [3]uint8{255, 255, 255}},
		"pure red":     {h: 0, s: 1, l: 0.5, expected: [3]uint8{255, 0, 0}},
		"pure green":   {h: 120, s: 1, l: 0.5, expected: [3]uint8{0, 255, 0}},
		"pure blue":    {h: 240, s: 1, l: 0.5, expected: [3]uint8{0, 0, 255}},
		"mid gray":     {h: 300, s: 0, l: 0.5, expected: [3]uint8{128, 128, 128}},
		"hue wraps":    {h: 360, s: 1, l: 0.5, expected: [3]uint8{255, 0, 0}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, hslToRGB(test.h, test.s, test.l))
		})
	}
}

func TestGradient_LuminanceRampPeaksMidline(t *testing.T) {
	g := NewGradient(210, 0.6, 81)

	sum := func(c [3]uint8) int { return int(c[0]) + int(c[1]) + int(c[2]) }
	first := sum(g.colors[0])
	mid := sum(g.colors[40])
	last := sum(g.colors[80])

	assert.Greater(t, mid, first, "sine ramp brightens toward the center")
	assert.GreaterOrEqual(t, last, first, "ramp tail returns toward the base luminance")
}
