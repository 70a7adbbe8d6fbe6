package main

import (
	"errors"
	"os"

	"github.com/specsmith/specsync/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var cliErr *cli.CLIError
		if errors.As(err, &cliErr) {
			if cliErr.Hint != "" {
				os.Stderr.WriteString("hint: " + cliErr.Hint + "\n")
			}
			os.Exit(cliErr.ExitCode)
		}
		os.Exit(1)
	}
}
