package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/domain/spec"
)

var reviewCmd = &cobra.Command{
	Use:   "review <spec-file>",
	Short: "Mark a draft document as reviewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionDocument(args[0], spec.EventReview)
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve <spec-file>",
	Short: "Mark a reviewed document as approved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionDocument(args[0], spec.EventApprove)
	},
}

func transitionDocument(path, event string) error {
	svcs, err := loadServices()
	if err != nil {
		return err
	}

	rel, err := workspaceRelative(svcs.Repo.Root(), path)
	if err != nil {
		return err
	}

	next, err := svcs.Spec.Transition(rel, event)
	if err != nil {
		return MapError(err)
	}

	fmt.Printf("%s Document is now %s\n", successStyle.Render("✓"), next)
	return nil
}

func init() {
	RootCmd.AddCommand(reviewCmd)
	RootCmd.AddCommand(approveCmd)
}
