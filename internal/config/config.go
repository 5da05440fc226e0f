// Package config provides configuration management for ipenrich.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	// TokenEnvVar is the environment variable consulted before the config
	// file when resolving the ipinfo API token.
	TokenEnvVar = "IPINFO_TOKEN"

	// DefaultLookupTimeout is the HTTP timeout for a single lookup request.
	DefaultLookupTimeout = 15 * time.Second

	// ChordTimeout is how long the chord prefix stays armed waiting for the
	// command key before reverting to idle.
	ChordTimeout = 3 * time.Second

	// DefaultTerminalWidth is the terminal width when auto-detection fails.
	DefaultTerminalWidth = 80
)

// Config holds the application configuration that is persisted to disk.
type Config struct {
	IPInfoToken string `json:"ipinfo_token"`
}

// GetConfigDir returns the platform-specific config directory for ipenrich.
// This is a variable to allow mocking in tests.
var GetConfigDir = func() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "ipenrich"), nil
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the config file and returns the Config struct.
// Returns an empty Config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func Save(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	// Create config directory with user-only permissions
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write config file with user-only read/write permissions
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveToken returns the ipinfo API token to use, preferring the flag
// value, then the environment, then the config file. An empty result is
// valid: ipinfo serves unauthenticated requests at a reduced rate limit.
func ResolveToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv(TokenEnvVar); key != "" {
		return key
	}
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return cfg.IPInfoToken
}
