package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const fileName = ".courseplanner.json"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	LastCatalogPath string `json:"last_catalog_path,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
}

// Path returns the absolute path to ~/.courseplanner.json
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, fileName), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// RememberCatalog stores path as the default catalog for the next session.
func RememberCatalog(path string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if cfg.LastCatalogPath == path {
		return nil
	}
	cfg.LastCatalogPath = path
	return Save(cfg)
}
