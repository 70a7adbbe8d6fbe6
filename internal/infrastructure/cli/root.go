package cli

import (
	"github.com/spf13/cobra"
)

// Set via ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd is the base command when specsync is called without subcommands.
var RootCmd = &cobra.Command{
	Use:     "specsync",
	Version: Version,
	Short:   "Keep spec documents, generated code, and docs in sync",
	Long: `specsync is a requirement-traceability synchronizer.
It keeps a structured SPEC document, a generated source tree, and derived
documentation consistent with one another:
1. What does the spec require?
2. Which requirements does the code implement?
3. Which are still missing?`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return RootCmd.Execute()
}
