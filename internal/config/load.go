package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < environment < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyFlags(cfg)
	cfg.sanitize()

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./avatar.yaml",
		filepath.Join(ConfigDir(), "avatar.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardAvatar")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardAvatar")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-avatar")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-avatar")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv overrides fields tagged with env:"..." when the variable is set.
// Unset variables leave the file/default value in place.
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// sanitize replaces unusable values with defaults.
func (c *Config) sanitize() {
	def := Default()
	if c.Textures.PaintSize <= 0 {
		c.Textures.PaintSize = def.Textures.PaintSize
	}
	if c.Textures.Upscale <= 0 {
		c.Textures.Upscale = 1
	}
	if c.Textures.EyeSize <= 0 {
		c.Textures.EyeSize = def.Textures.EyeSize
	}
	if c.Hair.MaxInertia <= 0 {
		c.Hair.MaxInertia = def.Hair.MaxInertia
	}
	if c.Hair.SpringRate <= 0 {
		c.Hair.SpringRate = def.Hair.SpringRate
	}
	if c.Hair.SpeedRate <= 0 {
		c.Hair.SpeedRate = def.Hair.SpeedRate
	}
}
