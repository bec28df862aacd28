package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ariel-frischer/barline/internal/bar"
	apperrors "github.com/ariel-frischer/barline/internal/errors"
	"github.com/ariel-frischer/barline/internal/parallel"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Advance one shared bar from multiple processes",
	Long: `Spawn worker processes that each report progress toward one shared
counter through marker files. Only the rank-1 worker (the reporter) renders;
the others append their markers and stay silent.`,
	Example: `  # Four workers (the configured default)
  barline workers

  # More workers, faster updates
  BARLINE_WORKERS=8 BARLINE_UPDATE_DELAY_MS=50 barline workers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dir := cfg.MarkerDir
		if dir == "" {
			dir = os.TempDir()
		}
		prefix := filepath.Join(dir, fmt.Sprintf("barline_%d", os.Getpid()))

		exe, err := os.Executable()
		if err != nil {
			return apperrors.Wrap(err, apperrors.Runtime)
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Writer = os.Stderr
		s.Suffix = fmt.Sprintf(" starting %d workers", cfg.Workers)
		s.Start()

		procs := make([]*exec.Cmd, 0, cfg.Workers)
		for rank := 1; rank <= cfg.Workers; rank++ {
			c := exec.Command(exe, "worker",
				"--rank", strconv.Itoa(rank),
				"--prefix", prefix,
				"--updates", strconv.Itoa(cfg.Total),
				"--workers", strconv.Itoa(cfg.Workers),
				"--delay-ms", strconv.Itoa(cfg.UpdateDelayMs),
			)
			if rank == parallel.ReporterRank {
				// Only the reporter owns the terminal.
				c.Stdout = os.Stdout
				c.Stderr = os.Stderr
			}
			if err := c.Start(); err != nil {
				s.Stop()
				return apperrors.WrapWithMessage(err, apperrors.Runtime,
					fmt.Sprintf("failed to start worker %d", rank))
			}
			procs = append(procs, c)
		}
		s.Stop()

		var failed int
		for _, c := range procs {
			if err := c.Wait(); err != nil {
				failed++
			}
		}

		// Stragglers may have recreated markers after the reporter's
		// teardown; sweep the unique prefix one last time.
		if matches, err := filepath.Glob(prefix + "_*"); err == nil {
			for _, m := range matches {
				_ = os.Remove(m)
			}
		}

		if failed > 0 {
			return apperrors.NewRuntimeError(fmt.Sprintf("%d worker(s) exited with errors", failed))
		}
		return nil
	},
}

var (
	workerRank    int
	workerPrefix  string
	workerUpdates int
	workerCount   int
	workerDelayMs int
)

// workerCmd is the hidden child-process entrypoint of the workers demo.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Hidden: true,
	Short:  "Internal: report progress as one parallel worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		total := float64(workerUpdates * workerCount)
		b, err := bar.NewWithOptions(total, bar.Options{
			Parallel: &bar.ParallelOptions{Prefix: workerPrefix, Rank: workerRank},
		}, "%d workers reporting", workerCount)
		if err != nil {
			return err
		}

		delay := time.Duration(workerDelayMs) * time.Millisecond
		for i := 0; i < workerUpdates; i++ {
			time.Sleep(delay)
			// The value passed here is irrelevant: the reporter re-derives
			// the count from the marker files, everyone else just appends.
			if err := b.Update(0); err != nil {
				return err
			}
		}

		if workerRank == parallel.ReporterRank {
			return b.Finishf("%d workers done", workerCount)
		}
		return nil
	},
}

func init() {
	workersCmd.GroupID = GroupDemos
	rootCmd.AddCommand(workersCmd)

	workerCmd.Flags().IntVar(&workerRank, "rank", 0, "1-indexed worker rank")
	workerCmd.Flags().StringVar(&workerPrefix, "prefix", "", "Shared marker-file prefix")
	workerCmd.Flags().IntVar(&workerUpdates, "updates", 1, "Updates to report")
	workerCmd.Flags().IntVar(&workerCount, "workers", 1, "Total worker count")
	workerCmd.Flags().IntVar(&workerDelayMs, "delay-ms", 100, "Delay between updates")
	rootCmd.AddCommand(workerCmd)
}
