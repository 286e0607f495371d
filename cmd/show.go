package cmd

import (
	"courseplanner/pkg/tui"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <course-number>",
	Short: "Print a course's title and prerequisites",
	Long:  `Look up a single course by its exact, case-sensitive course number.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		session, _, err := loadCatalog(file)
		if err != nil {
			return err
		}

		rec, err := session.Find(args[0])
		if err != nil {
			return err
		}

		tui.WriteCourse(cmd.OutOrStdout(), rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("file", "f", "", "Catalog file to read (defaults to the configured catalog)")
}
