// ABOUTME: Configuration management for imagedb with YAML config loading.
// ABOUTME: Handles OpenRouter credentials, XDG paths, and atomic config writes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultVisionModel is used when init or the config file leave the vision
// model blank.
const DefaultVisionModel = "google/gemini-2.0-flash-lite-001"

// ErrNotInitialized indicates that no usable config exists yet and the user
// must run `imagedb init` first.
var ErrNotInitialized = errors.New("imagedb is not initialized")

// Config stores imagedb settings loaded from ~/.config/imagedb/config.yaml.
type Config struct {
	APIKey      string `yaml:"api_key"`
	VisionModel string `yaml:"vision_model"`
}

// Path returns the config file path, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "imagedb", "config.yaml"), nil
}

// DataDir returns the data directory holding the images/ and index/
// subdirectories, honoring XDG_DATA_HOME.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "imagedb"), nil
}

// Load reads config from disk. Returns ErrNotInitialized when the file is
// missing or has no API key.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no config at %s (run `imagedb init`)", ErrNotInitialized, path)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: config at %s is missing api_key (run `imagedb init`)", ErrNotInitialized, path)
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = DefaultVisionModel
	}
	return &cfg, nil
}

// Save writes config to disk via a temp file and rename, so a partially
// written file can never be loaded as valid.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.yaml")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
