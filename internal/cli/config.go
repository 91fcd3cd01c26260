package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// Config represents the optional configuration for the ALMG CLI.
// Every field has a usable zero-value default; the CLI runs without a
// config file at all.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// DefaultModel is used by `almg track` when no --model flag is given
	// and the user enters nothing at the prompt.
	DefaultModel string `yaml:"default_model"`
	// ExportDir is where session exports are written. Defaults to the
	// current directory.
	ExportDir string `yaml:"export_dir"`
	// ColorMode controls terminal colors: auto, always, or never.
	ColorMode string `yaml:"color_mode" validate:"omitempty,oneof=auto always never"`
}

var config = &Config{}

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/almg on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "almg", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file.
// If no file is specified, it uses the default config location. A missing
// file is not an error; defaults apply.
func LoadConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			config = &Config{}
			return nil
		}
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	if err := validator.New().Struct(&c); err != nil {
		return fmt.Errorf("invalid config file: %w", err)
	}

	applyColorMode(c.ColorMode)

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// ResolvedExportDir returns the directory exports are written to.
func (c *Config) ResolvedExportDir() string {
	if c.ExportDir == "" {
		return "."
	}
	return c.ExportDir
}

// applyColorMode overrides fatih/color's tty autodetection when asked to.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}
