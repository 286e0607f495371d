package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"courseplanner/pkg/catalog"
	"courseplanner/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "99"

var (
	// These act as fallbacks initially, but are replaced by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so plain print statements also receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu and keeps the session alive until the user exits.
func RunTUI(session *catalog.Session) error {
	GetTheme()
	fmt.Println(accentStyle.Render("Welcome to the course planner."))

	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📂 Load Data Structure", "load"),
						huh.NewOption("📋 Print Course List", "list"),
						huh.NewOption("🔎 Print Course", "show"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("🚪 Exit", "exit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch action {
		case "load":
			err = runLoadTUI(session)
		case "list":
			runListTUI(session)
		case "show":
			err = runShowTUI(session)
		case "config":
			err = RunConfigTUI()
		case "exit":
			fmt.Println(accentStyle.Render("Thank you for using the course planner!"))
			return nil
		}

		if errors.Is(err, huh.ErrUserAborted) {
			continue
		}
		if err != nil {
			return err
		}
	}
}

func runLoadTUI(session *catalog.Session) error {
	var path string
	if cfg, err := config.Load(); err == nil {
		path = cfg.LastCatalogPath
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the filename").
				Description("One course per line: number, title, prerequisites...").
				Placeholder("courses.txt").
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	path = strings.TrimSpace(path)

	var res *catalog.LoadResult
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Loading courses from %s...", path)).
		Action(func() {
			res, loadErr = session.Load(path)
		}).
		Run()

	if loadErr != nil {
		WriteLoadError(os.Stdout, loadErr)
		return nil
	}

	WriteLoadSummary(os.Stdout, res)

	// Remembering the path is a convenience; a broken config must not fail the load.
	if err := config.RememberCatalog(path); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not save catalog path: %v", err)))
	}
	return nil
}

func runListTUI(session *catalog.Session) {
	courses, err := session.List()
	if err != nil {
		WriteNoData(os.Stdout)
		return
	}
	fmt.Println()
	WriteCourseList(os.Stdout, courses)
}

func runShowTUI(session *catalog.Session) error {
	if !session.Loaded() {
		WriteNoData(os.Stdout)
		return nil
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What course do you want to know about?").
				Description("Tab accepts a suggestion. Matching is exact and case-sensitive.").
				Suggestions(session.Catalog().IDs()).
				Value(&id),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	rec, err := session.Find(id)
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Course %s not found in the course list.", id)))
		return nil
	}
	if err != nil {
		WriteNoData(os.Stdout)
		return nil
	}

	fmt.Println()
	WriteCourse(os.Stdout, rec)
	return nil
}
