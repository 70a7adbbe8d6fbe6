package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusJSON bool

// specStatus is one row of the status overview.
type specStatus struct {
	SpecID      string  `json:"spec_id"`
	Feature     string  `json:"feature"`
	Status      string  `json:"status"`
	Path        string  `json:"path"`
	Total       int     `json:"total_requirements"`
	Implemented int     `json:"implemented"`
	Missing     int     `json:"missing"`
	Percent     float64 `json:"percent"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show traceability across every spec in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := collectStatus()
		if err != nil {
			return MapError(err)
		}

		if statusJSON {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(rows) == 0 {
			fmt.Println("No spec documents found. Run 'specsync create <feature>' to add one.")
			return nil
		}

		printHeader("Workspace Status")
		for _, row := range rows {
			marker := successStyle.Render("✓")
			if row.Missing > 0 {
				marker = pendingStyle.Render("⏳")
			}
			fmt.Printf("%s %-10s %-30s %-9s %d/%d (%.1f%%)\n",
				marker, row.SpecID, row.Feature, row.Status, row.Implemented, row.Total, row.Percent)
		}
		return nil
	},
}

// collectStatus parses every spec and, when the configured source tree
// exists, computes its traceability report. A missing or unscannable source
// tree degrades to all-missing counts rather than failing the overview.
func collectStatus() ([]specStatus, error) {
	svcs, err := loadServices()
	if err != nil {
		return nil, err
	}

	paths, err := svcs.Spec.ListPaths()
	if err != nil {
		return nil, err
	}

	rows := make([]specStatus, 0, len(paths))
	for _, p := range paths {
		doc, err := svcs.Spec.Load(p)
		if err != nil {
			warnf("skipping %s: %v", p, err)
			continue
		}

		row := specStatus{
			SpecID:  doc.ID,
			Feature: doc.Feature,
			Status:  doc.Status.String(),
			Path:    p,
			Total:   len(doc.Requirements),
			Missing: len(doc.Requirements),
		}
		if result, err := svcs.Sync.Verify(p, ""); err == nil {
			row.Total = result.Report.Total
			row.Implemented = len(result.Report.Implemented)
			row.Missing = len(result.Report.Missing)
			row.Percent = result.Report.Percent()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(statusCmd)
}
