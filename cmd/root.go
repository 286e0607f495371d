package cmd

import (
	"fmt"
	"os"

	"courseplanner/pkg/catalog"
	"courseplanner/pkg/config"
	"courseplanner/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "courseplanner",
	Short: "An advising tool for browsing a course catalog",
	Long: `courseplanner loads a plain-text course catalog and lets you list every
course in order or look up a single course and its prerequisites.

Catalog lines have the form: number, title[, prerequisite]...`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log load diagnostics at debug level")
}

func newSession() *catalog.Session {
	return catalog.NewSession(catalog.NewLoader(logger))
}

// resolveCatalogPath falls back to the configured catalog when no path is given.
func resolveCatalogPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.LastCatalogPath == "" {
		return "", fmt.Errorf("no catalog file given and no default configured (see 'courseplanner config --set-catalog')")
	}
	return cfg.LastCatalogPath, nil
}

// loadCatalog loads path into a fresh session and refuses empty results.
func loadCatalog(path string) (*catalog.Session, *catalog.LoadResult, error) {
	path, err := resolveCatalogPath(path)
	if err != nil {
		return nil, nil, err
	}

	session := newSession()
	res, err := session.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if !session.Loaded() {
		return nil, res, fmt.Errorf("%w: %s contains no valid courses (%d lines skipped)", catalog.ErrEmptyCatalog, path, res.Skipped)
	}
	return session, res, nil
}
