package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadLayered_CLIOverridesEverything(t *testing.T) {
	embedded := []byte("output:\n  format: yaml\nlogging:\n  level: info\n")
	t.Setenv("SYSINFO_FORMAT", "json")
	cli := CLIOverrides{Format: "text", LogLevel: "debug", Timeout: 2 * time.Second}

	cfg, err := LoadLayered(cli, embedded, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %q, want CLI override", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want CLI override", cfg.Logging.Level)
	}
	if cfg.Collection.Timeout.Duration != 2*time.Second {
		t.Errorf("Timeout = %v, want CLI override", cfg.Collection.Timeout.Duration)
	}
}

func TestLoadLayered_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: yaml\ndisk:\n  paths: [/srv]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYSINFO_FORMAT", "json")
	t.Setenv("SYSINFO_DISK_PATHS", strings.Join([]string{"/", "/data"}, string(os.PathListSeparator)))

	cfg, err := LoadLayered(CLIOverrides{}, nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want env override", cfg.Output.Format)
	}
	if want := []string{"/", "/data"}; !reflect.DeepEqual(cfg.Disk.Paths, want) {
		t.Errorf("Paths = %v, want %v", cfg.Disk.Paths, want)
	}
}

func TestLoadLayered_FileOverridesEmbed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("collection:\n  timeout: 750ms\n"), 0644); err != nil {
		t.Fatal(err)
	}
	embedded := []byte("collection:\n  timeout: 3s\n  collectors: [cpu]\n")

	cfg, err := LoadLayered(CLIOverrides{}, embedded, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.Timeout.Duration != 750*time.Millisecond {
		t.Errorf("Timeout = %v, want file value", cfg.Collection.Timeout.Duration)
	}
	if !reflect.DeepEqual(cfg.Collection.Collectors, []string{"cpu"}) {
		t.Errorf("Collectors = %v, want embedded value", cfg.Collection.Collectors)
	}
}

func TestLoadLayered_DefaultsWhenEmpty(t *testing.T) {
	cfg, err := LoadLayered(CLIOverrides{}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.Timeout.Duration != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s default", cfg.Collection.Timeout.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadLayered_MissingFileIgnored(t *testing.T) {
	if _, err := LoadLayered(CLIOverrides{}, nil, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
}

func TestLoadLayered_BadDuration(t *testing.T) {
	_, err := LoadLayered(CLIOverrides{}, []byte("collection:\n  timeout: soon\n"), "")
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("err = %v, want invalid duration", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"format", func(c *Config) { c.Output.Format = "xml" }, "output format"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "log level"},
		{"timeout", func(c *Config) { c.Collection.Timeout = Duration{} }, "timeout must be positive"},
		{"collector", func(c *Config) { c.Collection.Collectors = []string{"cpu", "gpu"} }, `unknown collector "gpu"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Disk.Paths = []string{"/", "/home"}
	cfg.Collection.Timeout = Duration{1500 * time.Millisecond}

	if err := WriteConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
