package bar

import (
	"io"
	"strings"
)

// ANSI escape sequences used by the interactive renderer.
const (
	escInverse  = "\033[7m"
	escResetFg  = "\033[39m"
	escReset    = "\033[0m"
	escCursorUp = "\033[A"
)

// AnsiRenderer redraws a single terminal line in place, simulating a filled
// bar with a background-color sweep. It keeps no redraw memory: every frame
// is a full-line overwrite.
type AnsiRenderer struct {
	out      io.Writer
	parallel bool
	gradient *Gradient
}

// NewAnsiRenderer creates a renderer writing frames to out.
func NewAnsiRenderer(out io.Writer) *AnsiRenderer {
	return &AnsiRenderer{out: out}
}

// SetParallel switches line reclaim from carriage return to a cursor-up
// escape. Parallel frames each end in a newline, so the next frame moves up
// one line and overwrites the same persistent line instead of whatever the
// cursor happens to be on.
func (r *AnsiRenderer) SetParallel(on bool) {
	r.parallel = on
}

// SetGradient enables the 24-bit per-column background gradient. Pass nil to
// fall back to the single inverse-video sweep.
func (r *AnsiRenderer) SetGradient(g *Gradient) {
	r.gradient = g
}

// Render writes one frame.
func (r *AnsiRenderer) Render(lay Layout, first bool) error {
	var b strings.Builder

	if first {
		// Leading space so the backspace below cannot land on content the
		// caller printed before the bar was constructed.
		b.WriteString(" ")
	}
	if r.parallel {
		if !first {
			b.WriteString(escCursorUp)
		}
	} else {
		b.WriteString("\b\r")
	}

	line := []rune(lay.Line(true))
	split := lay.SplitIndex
	if split > len(line) {
		split = len(line)
	}

	if r.gradient != nil {
		b.WriteString(r.gradient.Paint(line[:split]))
	} else {
		b.WriteString(escInverse)
		b.WriteString(string(line[:split]))
	}
	b.WriteString(escResetFg)
	b.WriteString(string(line[split:]))
	b.WriteString(escReset)

	if r.parallel {
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Erase blanks the currently drawn line and leaves the cursor at column 0.
func (r *AnsiRenderer) Erase(columns int) error {
	var b strings.Builder
	if r.parallel {
		b.WriteString(escCursorUp)
	}
	b.WriteString("\r")
	if columns > 1 {
		b.WriteString(strings.Repeat(" ", columns-1))
	}
	b.WriteString("\r")
	_, err := io.WriteString(r.out, b.String())
	return err
}
