package cmd

import (
	"courseplanner/pkg/catalog"
	"courseplanner/pkg/config"
	"courseplanner/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the classic numbered console menu",
	Long:  `Run the line-based menu (1 load, 2 list, 3 print course, 9 exit) on standard input and output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		console := tui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), newSession())
		console.OnLoad = func(res *catalog.LoadResult) {
			if err := config.RememberCatalog(res.Source); err != nil {
				logger.Warn("could not remember catalog path", zap.Error(err))
			}
		}
		return console.Run()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
