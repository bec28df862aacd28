// Package bar renders a live terminal progress indicator. A ProgressBar owns
// one progress state and one terminal profile, computes a frame layout on
// every update, and dispatches to an ANSI in-place renderer (interactive
// terminals) or a block-character differential renderer (captured streams).
// Multiple worker processes can drive one shared bar through the parallel
// aggregator; only the rank-1 reporter writes to the terminal.
package bar

import (
	"fmt"
	"io"
	"os"

	apperrors "github.com/ariel-frischer/barline/internal/errors"
	"github.com/ariel-frischer/barline/internal/parallel"
	"github.com/ariel-frischer/barline/internal/term"
)

// OutputHooks is an optional collaborator bracketing every terminal write
// batch, so an external logging subsystem can get out of the way. Absence of
// the collaborator is the normal case; the bar checks for nil before every
// invocation and never inspects a result.
type OutputHooks interface {
	PauseOutputLog()
	ResumeOutputLog()
}

// Counter is the append-only aggregation channel shared by parallel
// workers. Report appends one unit of work; Sum converges on the count of
// all appends so far (it may briefly undercount, never overcount); exactly
// one participant answers true from Reporter and owns the terminal. The
// filesystem marker-file implementation lives in the parallel package;
// anything satisfying the same contract (shared-memory counters, a
// message channel) can be injected through Options.Counter.
type Counter interface {
	Reporter() bool
	Report() error
	Sum() float64
	Close()
}

// ParallelOptions binds a bar to a shared marker-file prefix at
// construction, before the initial frame is rendered.
type ParallelOptions struct {
	// Prefix is the shared filesystem path prefix for marker files
	Prefix string
	// Rank is this worker's 1-indexed rank; rank 1 renders
	Rank int
}

// Options configures a ProgressBar beyond total and message.
type Options struct {
	// Output is the terminal stream. Defaults to os.Stderr so bar frames
	// never interleave with the program's data output on stdout.
	Output io.Writer
	// Profile overrides terminal detection (tests, forced widths)
	Profile *term.Profile
	// Hooks, when non-nil, bracket every write batch
	Hooks OutputHooks
	// Parallel, when non-nil, joins the marker-file counter at construction
	Parallel *ParallelOptions
	// Counter plugs in an alternative aggregation channel. Mutually
	// exclusive with Parallel; Parallel wins when both are set.
	Counter Counter
	// TrueColor enables the 24-bit gradient sweep on interactive color
	// terminals. Off by default.
	TrueColor bool
	// GradientHue is the gradient hue in degrees [0, 360)
	GradientHue float64
	// GradientSaturation is the gradient saturation in [0, 1]
	GradientSaturation float64
}

// ProgressBar is the façade over state, layout, and the two renderers.
// Lifecycle: Constructed -> Updating (repeatable) -> Finished, with no way
// back; any call after Finish fails with a Lifecycle error.
type ProgressBar struct {
	state    State
	profile  term.Profile
	out      io.Writer
	ansi     *AnsiRenderer
	block    *BlockRenderer
	agg      Counter
	hooks    OutputHooks
	finished bool
}

// New creates a bar and renders its initial frame at zero progress. The
// message is a fmt template applied to args.
func New(total float64, format string, args ...any) *ProgressBar {
	b, _ := NewWithOptions(total, Options{}, format, args...)
	return b
}

// NewWithOptions creates a bar with explicit options. The only error source
// is invalid parallel options.
func NewWithOptions(total float64, opts Options, format string, args ...any) (*ProgressBar, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	profile := term.Detect(out)
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	b := &ProgressBar{
		state:   newState(total, fmt.Sprintf(format, args...)),
		profile: profile,
		out:     out,
		hooks:   opts.Hooks,
	}

	if profile.Interactive {
		b.ansi = NewAnsiRenderer(out)
		if opts.TrueColor && profile.SupportsColor {
			b.ansi.SetGradient(NewGradient(opts.GradientHue, opts.GradientSaturation, profile.Columns))
		}
	} else {
		b.block = NewBlockRenderer(out, profile.SupportsUnicode)
	}

	switch {
	case opts.Parallel != nil:
		agg, err := parallel.New(opts.Parallel.Prefix, opts.Parallel.Rank)
		if err != nil {
			return nil, err
		}
		b.attach(agg)
	case opts.Counter != nil:
		b.attach(opts.Counter)
	}

	if b.renders() {
		if err := b.render(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// EnableParallel joins a shared counter after construction. Prefer the
// Parallel option when the rank is known up front, so non-reporters never
// render their initial frame.
func (b *ProgressBar) EnableParallel(prefix string, rank int) error {
	if b.finished {
		return errUsedAfterFinish()
	}
	agg, err := parallel.New(prefix, rank)
	if err != nil {
		return err
	}
	b.attach(agg)
	return nil
}

func (b *ProgressBar) attach(c Counter) {
	b.agg = c
	if b.ansi != nil {
		b.ansi.SetParallel(true)
	}
}

// Update advances the bar to n, keeping the current message.
func (b *ProgressBar) Update(n float64) error {
	return b.Updatef(n, "")
}

// Updatef advances the bar to n and replaces the message. An empty format
// keeps the current message. In parallel mode the supplied n is ignored by
// the reporter, which re-derives the count from the marker files; for
// non-reporter ranks the call appends its marker and returns without
// touching state or the terminal.
func (b *ProgressBar) Updatef(n float64, format string, args ...any) error {
	if b.finished {
		return errUsedAfterFinish()
	}

	if b.agg != nil {
		if err := b.agg.Report(); err != nil {
			return err
		}
		if !b.agg.Reporter() {
			return nil
		}
		n = b.agg.Sum()
	}

	b.state.setCurrent(n)
	if format != "" {
		b.state.Message = fmt.Sprintf(format, args...)
	}
	return b.render()
}

// Finish erases the bar and leaves a blank line.
func (b *ProgressBar) Finish() error {
	return b.Finishf("")
}

// Finishf erases the bar, optionally prints a summary line, tears down the
// aggregation channel, and transitions to Finished. Any later call on the
// bar fails.
func (b *ProgressBar) Finishf(format string, args ...any) error {
	if b.finished {
		return errUsedAfterFinish()
	}
	b.finished = true

	if b.agg != nil {
		defer b.agg.Close()
	}
	if !b.renders() {
		return nil
	}

	b.pause()
	defer b.resume()

	var err error
	if b.ansi != nil {
		err = b.ansi.Erase(b.profile.Columns)
	} else {
		err = b.block.Erase()
	}
	if err != nil {
		return err
	}

	line := "\n"
	if format != "" {
		line = fmt.Sprintf(format, args...) + "\n"
	}
	_, err = io.WriteString(b.out, line)
	return err
}

// Finished reports whether the bar has been torn down.
func (b *ProgressBar) Finished() bool {
	return b.finished
}

// renders reports whether this process owns the terminal: always true
// sequentially, reporter-only in parallel mode.
func (b *ProgressBar) renders() bool {
	return b.agg == nil || b.agg.Reporter()
}

func (b *ProgressBar) render() error {
	lay := Compute(b.state, b.profile.Columns)

	b.pause()
	defer b.resume()

	var err error
	if b.ansi != nil {
		err = b.ansi.Render(lay, b.state.FirstUpdate)
	} else {
		err = b.block.Render(lay, b.state.FirstUpdate)
	}
	b.state.FirstUpdate = false
	return err
}

func (b *ProgressBar) pause() {
	if b.hooks != nil {
		b.hooks.PauseOutputLog()
	}
}

func (b *ProgressBar) resume() {
	if b.hooks != nil {
		b.hooks.ResumeOutputLog()
	}
}

func errUsedAfterFinish() error {
	return apperrors.NewLifecycleError("progress bar used after finish",
		"create a new bar for a new task")
}
