// Package config loads minicheck's optional .minicheck.yaml configuration
// and resolves the effective theme from config, environment, and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from .minicheck.yaml.
type Config struct {
	Theme   string `yaml:"theme"`
	NoColor bool   `yaml:"no_color"`
	CI      bool   `yaml:"ci"`
}

// DefaultTheme is used when no theme is configured anywhere.
const DefaultTheme = "default"

// Flags holds the command-line overrides relevant to resolution.
type Flags struct {
	Theme      string
	NoColor    bool
	NoColorSet bool // whether -no-color was given explicitly
}

// Load reads .minicheck.yaml from the working directory, then from the
// user config dir (<config>/minicheck/.minicheck.yaml). A missing file is
// not an error; defaults are returned. A malformed file is reported on
// stderr and otherwise ignored, matching the principle that configuration
// must never stop a run.
func Load() *Config {
	cfg := &Config{Theme: DefaultTheme}

	path := configPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	cfg.CI = fileCfg.CI
	return cfg
}

// configPath finds the .minicheck.yaml file, local directory first, then
// the XDG user config dir.
func configPath() string {
	localPath := ".minicheck.yaml"
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "minicheck", ".minicheck.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// Resolve returns the effective theme name. Precedence, lowest to highest:
// config file, NO_COLOR / CI environment, command-line flags. No-color and
// CI both force the mono theme.
func Resolve(cfg *Config, fl Flags) string {
	theme := cfg.Theme
	if fl.Theme != "" {
		theme = fl.Theme
	}

	noColor := cfg.NoColor
	if os.Getenv("NO_COLOR") != "" {
		// The NO_COLOR convention: any non-empty value disables color.
		noColor = true
	}

	ci := cfg.CI
	if v := os.Getenv("CI"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			ci = b
		}
	}

	if fl.NoColorSet {
		noColor = fl.NoColor
	}

	if noColor || ci {
		return "mono"
	}
	return theme
}
