package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/infrastructure/storage"
	"github.com/specsmith/specsync/internal/infrastructure/update"
)

var updateForce bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer specsync release exists",
	Long: `Check the latest GitHub release and compare it against the running
version. Results are cached for 24 hours; pass --force to bypass the cache.
A network failure is reported as a warning, never as a failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		cachePath := filepath.Join(svcs.Repo.Root(), storage.SpecsyncDir, update.CacheFileName)
		checker := update.NewChecker(cachePath)

		latest, err := checker.Latest(cmd.Context(), Version, updateForce)
		if err != nil {
			warnf("could not check for updates: %v", err)
			return nil
		}

		if update.CompareVersions(latest, Version) > 0 {
			fmt.Printf("New version available: %s (current: %s)\n", latest, Version)
			fmt.Println(dimStyle.Render("Install with: go install github.com/specsmith/specsync/cmd/specsync@latest"))
			return nil
		}
		fmt.Printf("%s specsync %s is up to date\n", successStyle.Render("✓"), Version)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("specsync %s (commit %s, built %s)\n", Version, Commit, Date)
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "Bypass the 24h cache")
	RootCmd.AddCommand(updateCmd)
	RootCmd.AddCommand(versionCmd)
}
