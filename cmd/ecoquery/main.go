// Command ecoquery answers forest-change and CO₂ per-capita questions from
// the Our World in Data CSV exports.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/ecoquery/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// ExitErrors have already been reported in the requested format.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
