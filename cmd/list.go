package cmd

import (
	"courseplanner/pkg/tui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [catalog-file]",
	Short: "Print all courses sorted by course number",
	Long:  `Load a catalog and print every course as "number, title" in ascending order. Without a file the configured default catalog is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}

		session, _, err := loadCatalog(path)
		if err != nil {
			return err
		}

		courses, err := session.List()
		if err != nil {
			return err
		}

		tui.WriteCourseList(cmd.OutOrStdout(), courses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
