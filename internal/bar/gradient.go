package bar

import (
	"fmt"
	"math"
	"strings"
)

// Gradient is a precomputed horizontal ramp of 24-bit background colors, one
// sample per terminal column. Hue and saturation are fixed at construction;
// luminance follows a sine wave across the width. Computed once per width
// and reused for every frame.
type Gradient struct {
	hue        float64
	saturation float64
	colors     [][3]uint8
}

// NewGradient precomputes width color samples for the given hue (degrees)
// and saturation ([0, 1]).
func NewGradient(hue, saturation float64, width int) *Gradient {
	if width < 1 {
		width = 1
	}
	g := &Gradient{
		hue:        hue,
		saturation: saturation,
		colors:     make([][3]uint8, width),
	}
	for i := range g.colors {
		lum := 0.35 + 0.25*math.Sin(math.Pi*float64(i)/float64(width))
		g.colors[i] = hslToRGB(hue, saturation, lum)
	}
	return g
}

// Width returns the number of precomputed column samples.
func (g *Gradient) Width() int {
	return len(g.colors)
}

// Paint renders each rune wrapped in its column's background color escape.
func (g *Gradient) Paint(runes []rune) string {
	var b strings.Builder
	for i, r := range runes {
		c := g.colors[i%len(g.colors)]
		fmt.Fprintf(&b, "\033[48;2;%d;%d;%dm%c", c[0], c[1], c[2], r)
	}
	return b.String()
}

// hslToRGB converts hue [0, 360), saturation and luminance [0, 1] to RGB.
func hslToRGB(h, s, l float64) [3]uint8 {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return [3]uint8{
		uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255)),
	}
}
