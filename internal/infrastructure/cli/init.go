package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a specsync workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		already := svcs.Repo.IsInitialized()
		if err := svcs.Repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		cfg, err := svcs.Repo.LoadConfig()
		if err != nil {
			return err
		}
		if err := svcs.Repo.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		if already {
			fmt.Println("Workspace already initialized, config refreshed")
			return nil
		}
		fmt.Println("Initialized specsync workspace (.specsync/config.yaml)")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
