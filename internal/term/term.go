// Package term detects terminal capabilities for progress rendering.
// It answers two questions at construction time: how wide is the output, and
// is it an interactive terminal or a captured stream. The answers are
// captured once and never refreshed (resize handling is out of scope).
package term

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fallback dimensions used when the platform probe fails.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// Profile encapsulates detected terminal features.
type Profile struct {
	// Columns is the terminal width (DefaultColumns if unknown)
	Columns int
	// Rows is the terminal height (DefaultRows if unknown)
	Rows int
	// Interactive indicates whether output is a terminal (vs pipe/redirect)
	Interactive bool
	// SupportsColor indicates whether ANSI color codes should be emitted
	SupportsColor bool
	// SupportsUnicode indicates whether Unicode block characters are safe
	SupportsUnicode bool
}

// Detect probes the given output stream and returns its Profile.
// Width can be forced with BARLINE_WIDTH; NO_COLOR disables color and
// BARLINE_ASCII=1 disables Unicode glyphs.
func Detect(out io.Writer) Profile {
	interactive := false
	cols, rows := 0, 0

	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		interactive = term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
		if interactive {
			if w, h, err := term.GetSize(int(fd)); err == nil {
				cols, rows = w, h
			}
		}
	}

	if w, err := strconv.Atoi(os.Getenv("BARLINE_WIDTH")); err == nil && w > 0 {
		cols = w
	}
	if cols <= 0 {
		cols = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("BARLINE_ASCII") == "1"

	return Profile{
		Columns:         cols,
		Rows:            rows,
		Interactive:     interactive,
		SupportsColor:   interactive && !noColor,
		SupportsUnicode: !forceASCII,
	}
}
