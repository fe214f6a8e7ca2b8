package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	OutputAuto  = "auto"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Config controls how rtspparse reports parse results.
type Config struct {
	Output     string `toml:"output"`
	LogLevel   string `toml:"log_level"`
	Components bool   `toml:"components"`
}

func Default() Config {
	return Config{
		Output:     OutputAuto,
		LogLevel:   "warn",
		Components: true,
	}
}

// DefaultConfigPath returns the user level configuration file location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "rtspparse", "config.toml"), nil
}

// Load reads the configuration at path, or at DefaultConfigPath when path
// is empty. A missing file yields the defaults. It returns the config, the
// resolved path and whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return path, true, nil
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return path, false, nil
	default:
		return "", false, fmt.Errorf("stat config %s: %w", path, err)
	}
}

// ApplyOverrides replaces file values with non-empty command-line values.
func (c *Config) ApplyOverrides(output, logLevel string) error {
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	c.normalize()
	return c.Validate()
}

func (c *Config) normalize() {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = OutputAuto
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputAuto, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("output must be one of auto, json, table, got %q", c.Output)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	return nil
}
