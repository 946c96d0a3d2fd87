package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/smartenum/internal/cli"
)

// main is the entrypoint for the smartenum CLI.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands render their own errors; anything else came from cobra
		// (unknown command, wrong argument count) and is printed here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
