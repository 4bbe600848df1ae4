//go:build !windows

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return []string{
		filepath.Join(dir, "sysinfo", "config.yaml"),
		"/etc/sysinfo/config.yaml",
	}
}
