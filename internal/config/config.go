// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultStoreFile = "todo.json"
	DefaultDataDir   = "data"
	DefaultIDPrefix  = "todo"
)

// Config holds the runtime configuration for the todo CLI.
type Config struct {
	// Storage
	StoreFile string `toml:"store_file"`
	DataDir   string `toml:"data_dir"`
	IDPrefix  string `toml:"id_prefix"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	Debug         bool   `toml:"debug"`

	// Resolved store location (computed by Finalize)
	StorePath string `toml:"-"`
	StoreDir  string `toml:"-"`
}

// Load builds configuration in priority order:
// 1. Defaults
// 2. User config file (~/.todo/todo.toml or OS-specific config dir)
// 3. Project config file (todo.toml or .todo.toml in current directory)
// 4. Environment variables
// CLI flags override individual fields after Load; callers then run
// Finalize to resolve the store location.
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

// Finalize expands and resolves the store location after flag overrides
// have been applied. A bare store filename lives under the data dir; a
// path with a directory component is used as-is.
func (c *Config) Finalize() {
	c.DataDir = expandPath(c.DataDir)
	storeFile := expandPath(c.StoreFile)
	if filepath.Dir(storeFile) == "." {
		storeFile = filepath.Join(c.DataDir, storeFile)
	}
	c.StorePath = storeFile
	c.StoreDir = filepath.Dir(storeFile)
}

func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.DataDir = DefaultDataDir
	cfg.IDPrefix = DefaultIDPrefix
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.StoreFile = v
	}
	if v := os.Getenv("TODO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODO_ID_PREFIX"); v != "" {
		cfg.IDPrefix = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODO_DEBUG"); v != "" {
		cfg.Debug = boolFromString(v)
	}
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"todo.toml", ".todo.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file. Checks
// ~/.todo/todo.toml first, then the OS-specific config directory.
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".todo", "todo.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(cfgDir, "todo", "todo.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

// expandPath expands a leading ~ and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
