package cmd

import (
	"courseplanner/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to load a catalog, list courses and look up prerequisites.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(newSession())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
