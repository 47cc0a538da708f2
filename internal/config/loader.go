package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the data directory.
const FileName = "config.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.asteroids/config.yaml -> ./configs/asteroids.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", "asteroids.yaml")); err == nil {
		return cfg, nil
	}

	return embedded(), nil
}

// LoadOrInit reads path, falling back to the default configuration when the
// file is missing, unreadable, malformed or invalid. On fallback a fresh
// default is written to path so the next run starts clean. Failures are
// logged, never returned.
func LoadOrInit(path string, logger *log.Logger) Config {
	cfg, err := readFile(path)
	if err == nil {
		return cfg
	}

	if logger != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, writing default", "path", path)
		} else {
			logger.Warn("config unusable, falling back to default", "path", path, "error", err)
		}
	}

	cfg = embedded()
	if err := Save(path, cfg); err != nil && logger != nil {
		logger.Error("writing default config", "path", path, "error", err)
	}
	return cfg
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// readFile parses and validates one YAML file. Fields missing from the file
// keep their default values.
func readFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// embedded parses the embedded default YAML.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// DataDir returns ~/.asteroids, or "" when the home directory is unknown.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids")
}

// UserConfigPath returns ~/.asteroids/config.yaml, or "" when unknown.
func UserConfigPath() string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}
