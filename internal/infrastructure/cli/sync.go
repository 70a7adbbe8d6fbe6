package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/application"
)

var syncCodeDir string

var syncCmd = &cobra.Command{
	Use:   "sync <spec-file>",
	Short: "Synchronize derived docs with the source tree",
	Long: `Verify traceability and regenerate the derived artifacts: the matrix
block inside the spec document, the status README, and the architecture
diagram. Running sync twice on unchanged inputs changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		rel, err := workspaceRelative(svcs.Repo.Root(), args[0])
		if err != nil {
			return err
		}

		printHeader("Doc Syncer - Synchronization")
		result, err := svcs.Sync.Sync(rel, syncCodeDir)
		if err != nil {
			return MapError(err)
		}

		printResult(result)
		for _, w := range result.Warnings {
			warnf("%s", w)
		}
		fmt.Println(successStyle.Render("✓ Synchronization complete"))
		return nil
	},
}

func printResult(result *application.Result) {
	report := result.Report

	fmt.Printf("SPEC: %s (%s)\n", report.Feature, report.SpecID)
	fmt.Printf("Requirements: %d/%d implemented (%.1f%%)\n", len(report.Implemented), report.Total, report.Percent())

	for _, id := range report.Implemented {
		refs := result.Index[id]
		location := ""
		if len(refs) > 0 {
			location = dimStyle.Render(fmt.Sprintf(" (%s:%d)", refs[0].FilePath, refs[0].LineNumber))
		}
		fmt.Printf("  %s %s%s\n", successStyle.Render("✓"), id, location)
	}
	for _, id := range report.Missing {
		fmt.Printf("  %s %s\n", pendingStyle.Render("⏳"), id)
	}

	fmt.Printf("Source files: %d, test files: %d, test methods: %d\n",
		len(report.CodeFiles), len(report.TestFiles), result.TestMethods)
}

func init() {
	syncCmd.Flags().StringVarP(&syncCodeDir, "code", "c", "", "Code directory to analyze (default: configured source_dir)")
	RootCmd.AddCommand(syncCmd)
}
