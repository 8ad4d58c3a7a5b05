package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBranch is used by clone when neither a flag nor the config names a branch
const DefaultBranch = "main"

// Config represents the user configuration file
type Config struct {
	// Verbose enables diagnostic output for every command
	Verbose bool `yaml:"verbose"`
	// LogFile overrides the path of the rotating log file
	LogFile string `yaml:"logFile,omitempty"`
	// DefaultBranch is the branch clone checks out when none is given
	DefaultBranch string `yaml:"defaultBranch,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{DefaultBranch: DefaultBranch}
}

// GetConfigPath returns the path of the user configuration file.
// GITHELPER_CONFIG overrides it; otherwise the OS user config directory is used.
func GetConfigPath() (string, error) {
	if customPath := os.Getenv("GITHELPER_CONFIG"); customPath != "" {
		return customPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "githelper", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = DefaultBranch
	}
	return cfg, nil
}
