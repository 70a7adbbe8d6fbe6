package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCodeDir string

var verifyCmd = &cobra.Command{
	Use:   "verify <spec-file>",
	Short: "Check traceability without writing anything",
	Long: `Compute the traceability state of a spec document against the source
tree and report it. Exits non-zero when any requirement has no annotation.`,
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

		printHeader("Doc Syncer - Verification")
		result, err := svcs.Sync.Verify(rel, verifyCodeDir)
		if err != nil {
			return MapError(err)
		}

		printResult(result)

		if missing := len(result.Report.Missing); missing > 0 {
			return fmt.Errorf("verification failed: %d requirements without annotations", missing)
		}
		fmt.Println(successStyle.Render("✓ All requirements are implemented"))
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyCodeDir, "code", "c", "", "Code directory to analyze (default: configured source_dir)")
	RootCmd.AddCommand(verifyCmd)
}
