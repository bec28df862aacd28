package bar

import "time"

// State is the pure progress data for one bar. It performs no I/O: the
// façade mutates it, renderers only read it.
type State struct {
	// Total is the number of units of work. A total of 0 or 1 selects ratio
	// mode, where Current is interpreted as a fraction in [0, 1].
	Total float64
	// Current is the progress value, clamped into range before rendering
	Current float64
	// Message is the live label text
	Message string
	// StartedAt is when the bar was constructed
	StartedAt time.Time
	// FirstUpdate is true until the first frame has been rendered
	FirstUpdate bool
}

func newState(total float64, message string) State {
	if total < 0 {
		total = 0
	}
	return State{
		Total:       total,
		Message:     message,
		StartedAt:   time.Now(),
		FirstUpdate: true,
	}
}

// RatioMode reports whether the bar displays a bare percentage (total <= 1)
// instead of a current/total count.
func (s State) RatioMode() bool {
	return s.Total <= 1
}

// setCurrent stores n clamped into the displayable range: [0, 1] in ratio
// mode, [0, total] in count mode. Out-of-range values are never an error.
func (s *State) setCurrent(n float64) {
	hi := s.Total
	if s.RatioMode() {
		hi = 1
	}
	s.Current = clamp(n, 0, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
