package cmd

import (
	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take [assessment-id]",
	Short: "Start an assessment",
	Long:  "Start an assessment directly, skipping the catalog. Without an id the catalog opens.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		return runApp(cmd, id)
	},
}
