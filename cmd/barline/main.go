// barline - Terminal Progress Bars
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/barline

package main

import (
	"os"

	"github.com/ariel-frischer/barline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
