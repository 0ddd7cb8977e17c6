package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.netfolio/netfolio.yaml.
type Config struct {
	ContentPath     string `yaml:"content_path,omitempty"`
	DefaultLanguage string `yaml:"default_language,omitempty"`
}

// NetfolioDir returns the absolute path to ~/.netfolio/.
func NetfolioDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".netfolio"), nil
}

// ConfigPath returns the absolute path to ~/.netfolio/netfolio.yaml.
func ConfigPath() (string, error) {
	dir, err := NetfolioDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "netfolio.yaml"), nil
}

// StatePath returns the absolute path to the preference store.
func StatePath() (string, error) {
	dir, err := NetfolioDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the config used when none is on disk. An empty
// ContentPath selects the tables built into the binary.
func DefaultConfig() *Config {
	return &Config{DefaultLanguage: "en"}
}

// Load reads and parses ~/.netfolio/netfolio.yaml. A missing file yields
// DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	// Expand ~ in ContentPath at load time.
	cfg.ContentPath, err = ExpandPath(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.netfolio/netfolio.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
