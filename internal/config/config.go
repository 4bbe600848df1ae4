// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > embedded > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "500ms", "5s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all sysinfo configuration.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Collection CollectionConfig `yaml:"collection"`
	Disk       DiskConfig       `yaml:"disk"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// OutputConfig controls how snapshots are rendered.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// CollectionConfig holds statistic collection settings.
type CollectionConfig struct {
	// Timeout bounds a whole collection run.
	Timeout Duration `yaml:"timeout"`
	// Collectors names the collectors to run. Empty means all.
	Collectors []string `yaml:"collectors,omitempty"`
}

// DiskConfig selects the paths reported by the disk collector.
// Empty means every local mount.
type DiskConfig struct {
	Paths []string `yaml:"paths,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Collection: CollectionConfig{
			Timeout: Duration{5 * time.Second},
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and environment
// variables are used.
func Load(path string) (*Config, error) {
	return LoadLayered(CLIOverrides{}, nil, path)
}

// CLIOverrides holds values from command-line flags.
// Zero values are treated as "not set" and skipped.
type CLIOverrides struct {
	Format   string
	LogLevel string
	Timeout  time.Duration
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath is where "config init" writes when no path is given.
func DefaultPath() string {
	return configSearchPaths()[0]
}

// LoadLayered loads configuration with the full precedence chain:
// CLI flags > env vars > external YAML file > embedded bytes > defaults.
//
// An optional configPath argument controls external-file discovery:
//   - omitted: auto-discover via Locate()
//   - explicit value: use that path ("" means no external file)
//
// A missing external file is not an error; an unreadable or malformed one is.
func LoadLayered(cli CLIOverrides, embedded []byte, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	// Layer 1: embedded config (lowest priority data layer)
	if len(embedded) > 0 {
		if err := yaml.Unmarshal(embedded, cfg); err != nil {
			return nil, fmt.Errorf("parsing embedded config: %w", err)
		}
	}

	// Layer 2: external YAML file
	var filePath string
	if len(configPath) > 0 {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Layer 3: environment variables
	applyEnvOverrides(cfg)

	// Layer 4: CLI flags (highest priority)
	if cli.Format != "" {
		cfg.Output.Format = cli.Format
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.Timeout > 0 {
		cfg.Collection.Timeout = Duration{cli.Timeout}
	}

	return cfg, nil
}

// WriteConfig serializes the config to a YAML file at the given path.
// Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if format := os.Getenv("SYSINFO_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if level := os.Getenv("SYSINFO_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if paths := os.Getenv("SYSINFO_DISK_PATHS"); paths != "" {
		cfg.Disk.Paths = filepath.SplitList(paths)
	}
}

var (
	validFormats    = []string{"text", "json", "yaml"}
	validLevels     = []string{"debug", "info", "warn", "error"}
	validCollectors = []string{"hostname", "os", "cpu", "memory", "disk"}
)

// Validate checks that the configuration can drive a collection run.
func (c *Config) Validate() error {
	if !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("output format must be one of %s (got: %q)",
			strings.Join(validFormats, ", "), c.Output.Format)
	}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("log level must be one of %s (got: %q)",
			strings.Join(validLevels, ", "), c.Logging.Level)
	}
	if c.Collection.Timeout.Duration <= 0 {
		return fmt.Errorf("collection timeout must be positive (got: %s)", c.Collection.Timeout.Duration)
	}
	for _, name := range c.Collection.Collectors {
		if !contains(validCollectors, name) {
			return fmt.Errorf("unknown collector %q", name)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
