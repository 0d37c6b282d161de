package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultInstance names the run when the config does not.
const DefaultInstance = "default"

// Config represents the top-level cinereviews.yml configuration
type Config struct {
	Version  string         `yaml:"version"`
	Instance string         `yaml:"instance,omitempty"` // Namespace for journal keys
	Log      *LogConfig     `yaml:"log,omitempty"`
	Output   *OutputConfig  `yaml:"output,omitempty"`
	Journal  *JournalConfig `yaml:"journal,omitempty"`
}

// LogConfig controls diagnostic logging to stderr
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error (default: warn)
	Format string `yaml:"format,omitempty"` // json or console (default: console)
}

// OutputConfig controls how query results are printed
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // text or jsonl (default: text)
	Color  *bool  `yaml:"color,omitempty"`  // default: true
}

// JournalConfig enables the Redis event journal. Empty RedisURL disables it.
type JournalConfig struct {
	RedisURL string `yaml:"redis_url,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Version: "1.0"}
	// Defaults never fail validation
	_ = c.Validate()
	return c
}

// Validate performs strict validation on the configuration and fills in
// defaults for omitted sections.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Instance == "" {
		c.Instance = DefaultInstance
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level: %s (must be 'debug', 'info', 'warn' or 'error')", c.Log.Level)
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format: %s (must be 'console' or 'json')", c.Log.Format)
	}

	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Format != "text" && c.Output.Format != "jsonl" {
		return fmt.Errorf("invalid output.format: %s (must be 'text' or 'jsonl')", c.Output.Format)
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}

	if c.Journal == nil {
		c.Journal = &JournalConfig{}
	}

	return nil
}

// JournalEnabled reports whether events should be mirrored to Redis.
func (c *Config) JournalEnabled() bool {
	return c.Journal != nil && c.Journal.RedisURL != ""
}

// Load reads and validates cinereviews.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
