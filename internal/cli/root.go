// barline - Terminal Progress Bars
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/barline

// Package cli provides Cobra-based CLI commands demonstrating the barline
// renderer: sequential and ratio-mode demos, a multi-process workers demo
// driving one shared bar, and a doctor command showing detected terminal
// capabilities.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ariel-frischer/barline/internal/bar"
	"github.com/ariel-frischer/barline/internal/config"
	apperrors "github.com/ariel-frischer/barline/internal/errors"
	"github.com/ariel-frischer/barline/internal/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupDemos   = "demos"
	GroupUtility = "utility"
)

var rootCmd = &cobra.Command{
	Use:   "barline",
	Short: "barline terminal progress bars",
	Long: `barline terminal progress bars

Live progress indicators for terminals and captured streams: an ANSI
color-sweep bar for interactive sessions, a Unicode block bar with
sub-character resolution for logs, and marker-file aggregation so multiple
worker processes can drive one shared counter.

Source: https://github.com/ariel-frischer/barline`,
	Example: `  # Sequential count-mode bar
  barline demo

  # Ratio-mode bar (percentage only)
  barline demo --ratio

  # Four processes advancing one shared bar
  barline workers

  # Show what barline detected about this terminal
  barline doctor`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupDemos, Title: "Demos:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupUtility, Title: "Utility:"})

	rootCmd.SetHelpCommandGroupID(GroupUtility)
	rootCmd.SetCompletionCommandGroupID(GroupUtility)

	rootCmd.PersistentFlags().StringP("config", "c", ".barline/config.json", "Path to config file")
}

// loadConfig loads configuration honoring the persistent --config flag
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = ""
	}
	return config.Load(path)
}

// renderOptions translates configuration into bar options. A non-zero
// configured width overrides the detected one.
func renderOptions(cfg *config.Configuration) bar.Options {
	opts := bar.Options{
		TrueColor:          cfg.TrueColor,
		GradientHue:        cfg.GradientHue,
		GradientSaturation: cfg.GradientSaturation,
	}
	if cfg.Width > 0 {
		p := term.Detect(os.Stderr)
		p.Columns = cfg.Width
		opts.Profile = &p
	}
	return opts
}

// printError renders a failure with its remediation hints, if any.
func printError(err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", red(appErr.Category.String()+":"), appErr.Message)
		for _, hint := range appErr.Remediation {
			fmt.Fprintf(os.Stderr, "  %s %s\n", dim("hint:"), hint)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
}
