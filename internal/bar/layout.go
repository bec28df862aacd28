package bar

import (
	"fmt"
	"math"
	"strings"
)

// ellipsis marks a truncated label. Three characters; the truncation math
// below accounts for them.
const ellipsis = "..."

// Layout is the computed textual geometry of one frame. It is recomputed on
// every update and never persisted.
type Layout struct {
	// Label is the (possibly truncated) message text
	Label string
	// Progress is the numeric/percentage text, e.g. "03 / 10 [ 20.0% ]"
	Progress string
	// FillRatio is the bar fill fraction in [0, 1]
	FillRatio float64
	// SplitIndex is where the rendered line divides into filled and
	// unfilled segments
	SplitIndex int
	// TotalWidth is the terminal column count the layout was computed for
	TotalWidth int

	gap int
}

// Compute derives the frame layout from a progress snapshot and the terminal
// width. It is deterministic and side-effect-free.
func Compute(st State, columns int) Layout {
	progress := progressText(st)
	ratio := fillRatio(st)

	msg := []rune(st.Message)
	label := st.Message
	if len(msg)+len(progress)+3 > columns {
		cut := columns - len(progress) - 6
		if cut < 0 {
			cut = 0
		}
		if cut > len(msg) {
			cut = len(msg)
		}
		label = string(msg[:cut]) + ellipsis
	}

	gap := columns - 1 - (len([]rune(label)) + 1) - len(progress)
	if gap < 0 {
		gap = 0
	}

	split := int(math.Ceil(ratio * float64(columns)))
	if split > columns {
		split = columns
	}

	return Layout{
		Label:      label,
		Progress:   progress,
		FillRatio:  ratio,
		SplitIndex: split,
		TotalWidth: columns,
		gap:        gap,
	}
}

// Line assembles the single-line frame text: label, gap spaces, then either
// the progress text (interactive output) or blank padding of the same width
// (captured output, where the numbers live on the header line instead).
func (l Layout) Line(showProgress bool) string {
	tail := l.Progress
	if !showProgress {
		tail = strings.Repeat(" ", len(l.Progress))
	}
	return l.Label + strings.Repeat(" ", l.gap+1) + tail
}

// Header is the label+numeric line used by the block renderer.
func (l Layout) Header() string {
	return l.Label + "  " + l.Progress
}

// fillRatio computes the bar fill fraction. In count mode the ratio treats
// Current as "now processing item Current", so progress is reported before
// the current item completes: update(1) of 10 shows 0%, update(10) shows 90%.
func fillRatio(st State) float64 {
	if st.RatioMode() {
		return clamp(st.Current, 0, 1)
	}
	return clamp((st.Current-1)/st.Total, 0, 1)
}

// progressText formats the numeric portion of the frame. The ratio is
// clamped again before the percentage math even though fillRatio already
// clamps; both clamps are load-bearing.
func progressText(st State) string {
	if st.RatioMode() {
		pct := clamp(clamp(st.Current, 0, 1), 0, 1) * 100
		return fmt.Sprintf("[ %4.1f%% ]", pct)
	}

	digits := int(math.Ceil(math.Log10(st.Total)))
	if digits < 1 {
		digits = 1
	}
	pct := clamp(clamp((st.Current-1)/st.Total, 0, 1), 0, 1) * 100
	return fmt.Sprintf("%0*d / %0*d [ %4.1f%% ]",
		digits, int(st.Current), digits, int(st.Total), pct)
}
