package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/application"
)

var validateCmd = &cobra.Command{
	Use:   "validate [spec-file]",
	Short: "Validate spec documents for structure and required fields",
	Long: `Validate one spec document, or every document in the workspace when no
path is given. Errors fail validation; warnings alone pass.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		var results []*application.ValidationResult
		if len(args) == 1 {
			rel, err := workspaceRelative(svcs.Repo.Root(), args[0])
			if err != nil {
				return err
			}
			result, err := svcs.Validate.ValidateFile(rel)
			if err != nil {
				return MapError(err)
			}
			results = append(results, result)
		} else {
			results, err = svcs.Validate.ValidateAll()
			if err != nil {
				return MapError(err)
			}
		}

		failed := 0
		for _, result := range results {
			fmt.Printf("\nValidating: %s\n", result.Path)
			for _, e := range result.Errors {
				fmt.Printf("  %s %s\n", errorStyle.Render("✗"), e)
			}
			for _, w := range result.Warnings {
				fmt.Printf("  %s %s\n", pendingStyle.Render("⚠"), w)
			}
			if result.Valid() {
				if len(result.Warnings) > 0 {
					fmt.Println(successStyle.Render("  ✓ valid (with warnings)"))
				} else {
					fmt.Println(successStyle.Render("  ✓ valid"))
				}
			} else {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed validation", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
