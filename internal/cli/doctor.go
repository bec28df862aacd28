package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/barline/internal/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show detected terminal capabilities",
	Long: `Probe the output stream the way the renderer does at construction and
print what was detected: dimensions, interactivity, and color/Unicode
support. Useful when a bar falls back to block mode unexpectedly.`,
	Example: `  barline doctor

  # See what a pipe looks like to the renderer
  barline doctor | cat`,
	Run: func(cmd *cobra.Command, args []string) {
		p := term.Detect(os.Stdout)

		fmt.Printf("columns:     %d\n", p.Columns)
		fmt.Printf("rows:        %d\n", p.Rows)
		fmt.Printf("interactive: %s\n", capability(p.Interactive))
		fmt.Printf("color:       %s\n", capability(p.SupportsColor))
		fmt.Printf("unicode:     %s\n", capability(p.SupportsUnicode))

		if p.Interactive {
			fmt.Println("\nrenderer: ANSI color sweep (in-place redraw)")
		} else {
			fmt.Println("\nrenderer: Unicode block bar (differential frames)")
		}
	},
}

// capability formats a boolean as a colored check or cross.
func capability(on bool) string {
	if on {
		return color.New(color.FgGreen).Sprint("✓ yes")
	}
	return color.New(color.FgRed).Sprint("✗ no")
}

func init() {
	doctorCmd.GroupID = GroupUtility
	rootCmd.AddCommand(doctorCmd)
}
