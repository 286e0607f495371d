package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"courseplanner/pkg/catalog"
	"courseplanner/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Course Catalog", "catalog"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "catalog":
			err = runSetCatalogTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	path, _ := config.Path()
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)))
	if cfg.LastCatalogPath == "" {
		fmt.Println("Default Catalog: Not set")
	} else {
		fmt.Printf("Default Catalog: %s\n", cfg.LastCatalogPath)
	}
	if cfg.AccentColor == "" {
		fmt.Printf("Accent Color: %s (default)\n", defaultAccent)
	} else {
		fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	}
	fmt.Println()
}

func runSetCatalogTUI(cfg *config.AppConfig) error {
	input := cfg.LastCatalogPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the path of your course catalog").
				Description("It is offered as the default whenever you load data.").
				Placeholder("courses.txt").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		fmt.Println("Operation cancelled: No path provided.")
		return nil
	}

	// Only remember catalogs that can actually be opened.
	res, err := catalog.Load(input)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", err)))
		return nil
	}

	if err := config.RememberCatalog(input); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default catalog saved: %s (%d courses)\n", input, res.Loaded)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Planner Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetAccentStyle().Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}

// GetAccentStyle returns the accent style for the saved theme.
func GetAccentStyle() lipgloss.Style {
	GetTheme()
	return accentStyle
}

// ValidateColor accepts an ANSI 256 color number or a #RRGGBB hex code.
func ValidateColor(s string) error {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
		for _, r := range s[1:] {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return fmt.Errorf("must be a valid 6-character hex code starting with #")
			}
		}
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || strings.HasPrefix(s, "+") || n < 0 || n > 255 {
		return fmt.Errorf("must be a color number between 0 and 255 or a hex code")
	}
	return nil
}
