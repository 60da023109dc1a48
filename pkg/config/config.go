// Package config loads the solids YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Script  ScriptConfig  `yaml:"script"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// ReportConfig configures report output.
type ReportConfig struct {
	Format    string `yaml:"format"` // text, json
	Precision int    `yaml:"precision"`
}

// MeshConfig configures tessellation.
type MeshConfig struct {
	Cells int `yaml:"cells"` // marching-cubes cells along the longest axis
}

// ScriptConfig configures the scene script engine.
type ScriptConfig struct {
	Timeout string `yaml:"timeout"`
}

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Report:  ReportConfig{Format: FormatText, Precision: 2},
		Mesh:    MeshConfig{Cells: 64},
		Script:  ScriptConfig{Timeout: "5s"},
	}
}

// Load reads configuration from a YAML file layered over Default.
// A missing file is not an error. Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SOLIDS_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("SOLIDS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if cells := os.Getenv("SOLIDS_MESH_CELLS"); cells != "" {
		n, err := strconv.Atoi(cells)
		if err != nil {
			return fmt.Errorf("SOLIDS_MESH_CELLS: %w", err)
		}
		c.Mesh.Cells = n
	}
	return nil
}

// ScriptTimeout returns the script timeout as a duration.
// An empty or unparseable value yields 5s.
func (c *Config) ScriptTimeout() time.Duration {
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	valid := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid logging level: %q (valid: %v)", c.Logging.Level, ValidLevels)
	}

	if c.Report.Format != FormatText && c.Report.Format != FormatJSON {
		return fmt.Errorf("invalid report format: %q (valid: %s, %s)", c.Report.Format, FormatText, FormatJSON)
	}
	if c.Report.Precision < 0 || c.Report.Precision > 15 {
		return fmt.Errorf("report precision must be between 0 and 15, got %d", c.Report.Precision)
	}
	if c.Mesh.Cells < 8 {
		return fmt.Errorf("mesh cells must be at least 8, got %d", c.Mesh.Cells)
	}
	if c.Script.Timeout != "" {
		if d, err := time.ParseDuration(c.Script.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("invalid script timeout: %q", c.Script.Timeout)
		}
	}
	return nil
}
