// Package parallel aggregates progress from independent worker processes
// through marker files on a shared filesystem path. Each worker appends one
// byte per reported unit to its own rank-named file (<prefix>_<rank>); the
// rank-1 "reporter" derives the shared counter by summing marker file sizes.
// File content is opaque: only the length carries meaning.
package parallel

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/ariel-frischer/barline/internal/errors"
)

// ReporterRank is the worker rank that renders the shared bar.
const ReporterRank = 1

// Aggregator is one worker's handle on the shared counter.
type Aggregator struct {
	prefix string
	rank   int
}

// New binds a worker to the shared marker-file prefix. Rank is 1-indexed.
// The reporter clears any stale marker files under the prefix; other ranks
// clear only their own file, so a late-binding worker cannot wipe counts
// already reported by its peers. Cleanup is best-effort.
func New(prefix string, rank int) (*Aggregator, error) {
	if prefix == "" {
		return nil, apperrors.NewArgumentError("marker prefix cannot be empty")
	}
	if rank < 1 {
		return nil, apperrors.NewArgumentError("worker rank must be >= 1",
			"ranks are 1-indexed; rank 1 is the reporter")
	}

	a := &Aggregator{prefix: prefix, rank: rank}
	if a.Reporter() {
		a.removeAll()
	} else {
		_ = os.Remove(a.markerPath(rank))
	}
	return a, nil
}

// Reporter reports whether this worker renders the shared bar.
func (a *Aggregator) Reporter() bool {
	return a.rank == ReporterRank
}

// Rank returns this worker's 1-indexed rank.
func (a *Aggregator) Rank() int {
	return a.rank
}

// Report appends one marker byte to this worker's file. Appends are
// order-independent and need no locking: no two workers share a file.
func (a *Aggregator) Report() error {
	f, err := os.OpenFile(a.markerPath(a.rank), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime,
			"check that the marker directory exists and is writable")
	}
	defer f.Close()

	if _, err := f.Write([]byte{'.'}); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	return nil
}

// Sum returns the aggregate progress: the summed byte sizes of every marker
// file under the prefix. A peer's append may not be visible to this read
// yet, so the sum can transiently undercount; it never overcounts.
func (a *Aggregator) Sum() float64 {
	matches, err := filepath.Glob(a.prefix + "_*")
	if err != nil {
		return 0
	}

	var total int64
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil {
			total += info.Size()
		}
	}
	return float64(total)
}

// Close removes all marker files under the prefix. Best-effort: files may
// already be gone, or a straggling worker may recreate its file after the
// fact. Prefixes are unique per run, so leftovers cannot collide with a
// subsequent run.
func (a *Aggregator) Close() {
	a.removeAll()
}

func (a *Aggregator) removeAll() {
	matches, err := filepath.Glob(a.prefix + "_*")
	if err != nil {
		return
	}
	for _, m := range matches {
		_ = os.Remove(m)
	}
}

func (a *Aggregator) markerPath(rank int) string {
	return fmt.Sprintf("%s_%d", a.prefix, rank)
}

// DefaultPrefix returns a per-run marker prefix under dir, or under the
// system temp directory when dir is empty. Keyed by the parent pid so that
// sibling workers spawned by one coordinator resolve the same prefix.
func DefaultPrefix(dir string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("barline_%d", os.Getppid()))
}
