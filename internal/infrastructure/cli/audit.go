package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	auditJSON  bool
	auditLimit int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the workspace audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		events, err := svcs.Audit.Timeline()
		if err != nil {
			return MapError(err)
		}

		if auditLimit > 0 && len(events) > auditLimit {
			events = events[len(events)-auditLimit:]
		}

		if auditJSON {
			data, err := json.MarshalIndent(events, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(events) == 0 {
			fmt.Println("No events recorded")
			return nil
		}

		printHeader("Audit Log")
		for _, e := range events {
			line := fmt.Sprintf("%s  %-15s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.SpecID)
			for k, v := range e.Metadata {
				line += dimStyle.Render(fmt.Sprintf("  %s=%s", k, v))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Output in JSON format")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 0, "Show only the last N events")
	RootCmd.AddCommand(auditCmd)
}
