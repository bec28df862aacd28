// Package bar_test tests the block renderer: eighth-block fractional glyphs,
// differential erasure, and redraw memory.
// Related: internal/bar/block.go
// Tags: block, differential, backspace, glyphs, redraw
package bar_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ariel-frischer/barline/internal/bar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed geometry used below: 40 columns, total=10, message "copying".
// Progress text "N / 10 [ xx.x% ]" is 16 characters, so the bar body is
// (40-4) - 16 - 2 = 18 cells.

func TestBlockRenderer_FirstFrame(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)
	lay := bar.Compute(countState(10, 3, "copying"), 40)

	require.NoError(t, r.Render(lay, true))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, lay.Header()+"\n"),
		"first frame prints the label+numeric line then the bar")
	assert.NotContains(t, out, "\b", "nothing to erase on the first frame")
	assert.False(t, strings.HasSuffix(out, "\n"),
		"cursor rests at the end of the bar awaiting the next differential erase")

	// ratio 0.2 of 18 cells = 3.6: three full blocks then the 4/8 glyph.
	assert.Contains(t, out, "███▌")
}

func TestBlockRenderer_FractionalGlyphs(t *testing.T) {
	tests := map[string]struct {
		current float64
		glyph   string
	}{
		// current=2 -> ratio 0.1 -> 1.8 cells -> fraction 0.8 -> 6/8 glyph
		"fraction 0.8 renders 6/8 block": {current: 2, glyph: "█▊"},
		// current=3 -> ratio 0.2 -> 3.6 cells -> fraction 0.6 -> 4/8 glyph
		"fraction 0.6 renders 4/8 block": {current: 3, glyph: "███▌"},
		// current=6 -> ratio 0.5 -> 9.0 cells -> fraction 0 -> blank cell
		"fraction below eighth is blank": {current: 6, glyph: "█████████ "},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			r := bar.NewBlockRenderer(&buf, true)
			lay := bar.Compute(countState(10, test.current, "copying"), 40)

			require.NoError(t, r.Render(lay, true))
			assert.Contains(t, buf.String(), test.glyph)
		})
	}
}

func TestBlockRenderer_CountOnlyChangeErasesBarRegion(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)

	require.NoError(t, r.Render(bar.Compute(countState(10, 3, "copying"), 40), true))
	// frame 1: 3 full blocks + glyph cell + 14 padding cells

	buf.Reset()
	require.NoError(t, r.Render(bar.Compute(countState(10, 5, "copying"), 40), false))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, strings.Repeat("\b", 15)),
		"erases exactly the previous padding plus the partial-glyph cell")
	assert.NotContains(t, out, "copying", "label line is not reprinted")
	assert.NotContains(t, out, "\n")
}

func TestBlockRenderer_LabelPrintedOncePerMessage(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)

	for i, current := range []float64{2, 5, 8} {
		require.NoError(t, r.Render(bar.Compute(countState(100, current, "steady label"), 40), i == 0))
	}

	assert.Equal(t, 1, strings.Count(buf.String(), "steady label"),
		"three updates with an unchanged message print the label exactly once")
}

func TestBlockRenderer_MessageChangeRedrawsFullFrame(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)

	first := bar.Compute(countState(10, 3, "reading"), 40)
	require.NoError(t, r.Render(first, true))
	frameLen := len([]rune(first.Header())) + 1 + 18 // header, newline, bar cells

	buf.Reset()
	second := bar.Compute(countState(10, 4, "writing"), 40)
	require.NoError(t, r.Render(second, false))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, strings.Repeat("\b", frameLen)),
		"message change erases the whole previous block")
	assert.Contains(t, out, second.Header()+"\n")
}

func TestBlockRenderer_IdenticalUpdatesKeepVisibleState(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)
	lay := bar.Compute(countState(10, 5, "copying"), 40)

	require.NoError(t, r.Render(lay, true))
	require.NoError(t, r.Render(lay, false))

	buf.Reset()
	require.NoError(t, r.Render(lay, false))
	repeat := buf.String()

	// Every repeated frame erases the variable region and redraws it
	// identically: no drift accumulates in the redraw memory.
	assert.Equal(t, strings.Repeat("\b", 11)+"▏"+strings.Repeat(" ", 10), repeat)
}

func TestBlockRenderer_FullBar(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)
	lay := bar.Compute(countState(10, 1e6, "overflow"), 40)

	require.NoError(t, r.Render(lay, true))

	assert.Contains(t, buf.String(), strings.Repeat("█", 18),
		"ratio clamps to 1 and the bar fills completely without width overflow")
}

func TestBlockRenderer_ASCIIFallback(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, false)
	lay := bar.Compute(countState(10, 5, "copying"), 40)

	require.NoError(t, r.Render(lay, true))

	out := buf.String()
	assert.NotContains(t, out, "█")
	assert.Contains(t, out, "####")
}

func TestBlockRenderer_Erase(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)
	lay := bar.Compute(countState(10, 3, "copying"), 40)

	require.NoError(t, r.Render(lay, true))
	frameLen := len([]rune(lay.Header())) + 1 + 18

	buf.Reset()
	require.NoError(t, r.Erase())

	assert.Equal(t, strings.Repeat("\b", frameLen), buf.String())
}

func TestBlockRenderer_EraseBeforeAnyFrame(t *testing.T) {
	var buf bytes.Buffer
	r := bar.NewBlockRenderer(&buf, true)

	require.NoError(t, r.Erase())
	assert.Empty(t, buf.String())
}
