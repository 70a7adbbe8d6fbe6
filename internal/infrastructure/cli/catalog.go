package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/domain/capability"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the capability catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		catalog, err := svcs.Repo.LoadCatalog()
		if err != nil {
			return err
		}

		printHeader("Capability Catalog")
		for _, entry := range catalog.Entries {
			fmt.Printf("- %s (%s): %s\n", entry.Name, entry.Category, entry.Description)
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("\n%d capabilities, %d core", len(catalog.Entries), len(catalog.Core))))
		return nil
	},
}

// previewCapabilities runs the matcher and renders one descriptive line per
// matched tag for the interactive create flow.
func previewCapabilities(catalog capability.Catalog, feature string, requirements []string) []string {
	tags := capability.NewMatcher(catalog).Match(feature, requirements)

	lines := make([]string, 0, len(tags))
	for _, tag := range tags {
		if entry, ok := catalog.Lookup(tag); ok {
			lines = append(lines, fmt.Sprintf("%s (%s): %s", entry.Name, entry.Category, entry.Description))
			continue
		}
		lines = append(lines, tag)
	}
	return lines
}

func init() {
	RootCmd.AddCommand(catalogCmd)
}
