package cli

import (
	"time"

	"github.com/ariel-frischer/barline/internal/bar"
	"github.com/spf13/cobra"
)

var demoRatio bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a sequential progress bar",
	Long: `Render a single sequential progress bar.

Count mode (the default) shows "current / total" plus a percentage; with
--ratio the bar tracks a bare fraction instead. On interactive terminals the
bar redraws one line in place; on captured output it logs block-character
frames.`,
	Example: `  # Count mode with the configured total
  barline demo

  # Ratio mode
  barline demo --ratio

  # Pipe it to see the block renderer
  barline demo 2>&1 | cat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		delay := time.Duration(cfg.UpdateDelayMs) * time.Millisecond
		opts := renderOptions(cfg)

		if demoRatio {
			b, err := bar.NewWithOptions(1, opts, "sampling signal")
			if err != nil {
				return err
			}
			for i := 0; i <= 20; i++ {
				time.Sleep(delay)
				if err := b.Update(float64(i) / 20); err != nil {
					return err
				}
			}
			return b.Finishf("sampling complete")
		}

		b, err := bar.NewWithOptions(float64(cfg.Total), opts, "processing %d items", cfg.Total)
		if err != nil {
			return err
		}
		for i := 1; i <= cfg.Total; i++ {
			time.Sleep(delay)
			if err := b.Update(float64(i)); err != nil {
				return err
			}
		}
		return b.Finishf("processed %d items", cfg.Total)
	},
}

func init() {
	demoCmd.GroupID = GroupDemos
	demoCmd.Flags().BoolVar(&demoRatio, "ratio", false, "Track a bare fraction instead of a count")
	rootCmd.AddCommand(demoCmd)
}
