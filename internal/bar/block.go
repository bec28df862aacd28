package bar

import (
	"io"
	"strings"
)

// partialBlocks maps floor(fraction * 8) to a partial block glyph: index 0
// is blank (fraction below one eighth), rising through the eighth-blocks to
// a full block.
var partialBlocks = [9]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// asciiBlocks is the fallback glyph set for terminals without Unicode.
var asciiBlocks = [9]string{" ", " ", " ", " ", "#", "#", "#", "#", "#"}

// redrawMemory records what the previous frame drew. It always reflects the
// most recent frame and is used only to compute how many erase characters to
// emit before the next redraw.
type redrawMemory struct {
	filledUnits  int
	paddingUnits int
	headerLen    int
	label        string
	rendered     bool
}

// BlockRenderer draws a static label line followed by a separately redrawn
// block-character bar. It targets non-interactive consumers (captured
// output, log files) where ANSI color is not rendered but backspace-based
// erasure of the previous region still yields a readable frame log.
//
// Sub-character resolution comes from the eighth-block glyphs: the bar cell
// after the last full block shows one of eight partial fills.
type BlockRenderer struct {
	out     io.Writer
	full    string
	partial [9]string
	mem     redrawMemory
}

// NewBlockRenderer creates a renderer writing frames to out.
func NewBlockRenderer(out io.Writer, unicode bool) *BlockRenderer {
	r := &BlockRenderer{out: out, full: "█", partial: partialBlocks}
	if !unicode {
		r.full = "#"
		r.partial = asciiBlocks
	}
	return r
}

// barWidth is the cell budget for the bar body.
func barWidth(lay Layout) int {
	usable := lay.TotalWidth - 4
	w := usable - len(lay.Progress) - 2
	if w < 1 {
		w = 1
	}
	return w
}

// Render writes one frame. When the label changed since the previous frame
// the whole previous block (label line plus bar line) is erased and both are
// redrawn; when only the count changed, just the previous frame's variable
// region (partial glyph plus padding) is erased and the bar is extended in
// place. The label line is therefore printed exactly once per message.
func (r *BlockRenderer) Render(lay Layout, first bool) error {
	width := barWidth(lay)
	ideal := lay.FillRatio * float64(width)
	whole := int(ideal)
	fracIdx := int((ideal - float64(whole)) / 0.125)
	if fracIdx > 8 {
		fracIdx = 8
	}
	padding := width - whole - 1
	if padding < 0 {
		padding = 0
	}

	var b strings.Builder

	fresh := first || !r.mem.rendered || lay.Label != r.mem.label || whole < r.mem.filledUnits
	if fresh {
		if r.mem.rendered {
			b.WriteString(strings.Repeat("\b", r.mem.frameLen()))
		}
		header := lay.Header()
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(r.full, whole))
		r.mem.headerLen = len([]rune(header))
	} else {
		b.WriteString(strings.Repeat("\b", r.mem.paddingUnits+1))
		b.WriteString(strings.Repeat(r.full, whole-r.mem.filledUnits))
	}
	b.WriteString(r.partial[fracIdx])
	b.WriteString(strings.Repeat(" ", padding))

	r.mem.filledUnits = whole
	r.mem.paddingUnits = padding
	r.mem.label = lay.Label
	r.mem.rendered = true

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Erase backspaces over the entire last rendered frame. The cursor ends
// where the frame began.
func (r *BlockRenderer) Erase() error {
	if !r.mem.rendered {
		return nil
	}
	_, err := io.WriteString(r.out, strings.Repeat("\b", r.mem.frameLen()))
	r.mem = redrawMemory{}
	return err
}

// frameLen is the full character count of the last frame: header line,
// newline, filled blocks, partial cell, and padding.
func (m redrawMemory) frameLen() int {
	return m.headerLen + 1 + m.filledUnits + 1 + m.paddingUnits
}
