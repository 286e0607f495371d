package cmd

import (
	"fmt"

	"courseplanner/pkg/catalog"
	"courseplanner/pkg/config"
	"courseplanner/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage courseplanner configuration",
	Long:  "View or edit your local configuration settings (default catalog file, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setCatalog, _ := cmd.Flags().GetString("set-catalog")
		setColor, _ := cmd.Flags().GetString("set-color")

		if setCatalog == "" && setColor == "" {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if setColor != "" {
			if err := tui.ValidateColor(setColor); err != nil {
				return fmt.Errorf("invalid color %q: %w", setColor, err)
			}
			cfg.AccentColor = setColor
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.GetAccentStyle().Render(fmt.Sprintf("✅ Accent color saved as: %s", setColor)))
		}

		if setCatalog != "" {
			res, err := catalog.NewLoader(logger).Load(setCatalog)
			if err != nil {
				return fmt.Errorf("could not use catalog: %w", err)
			}
			if err := config.RememberCatalog(setCatalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Default catalog saved as: %s (%d courses, %d lines skipped)\n", setCatalog, res.Loaded, res.Skipped)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-catalog", "c", "", "Set the catalog file used when none is given")
	configCmd.Flags().String("set-color", "", "Set the accent color (ANSI 0-255 or #RRGGBB)")
}
