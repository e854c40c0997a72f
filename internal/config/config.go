package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	BaseURL            string     `toml:"base_url"` // search API endpoint
	SiteURL            string     `toml:"site_url"` // listing detail pages
	RequestTimeoutSecs int        `toml:"request_timeout_secs"`
	WatermarkPath      string     `toml:"watermark_path"` // empty means the default per-user location
	UISettings         UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DateFormat string `toml:"date_format"` // layout for the date column
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service using the per-user config location.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &service{
		filePath: filepath.Join(configDir, "torrview", "config.toml"),
	}
}

// NewServiceWithPath creates a config service bound to a specific file.
func NewServiceWithPath(path string) Service {
	return &service{filePath: path}
}

// Load loads the configuration, returning defaults when no file exists.
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file.
func (cs *service) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:            "https://nyaa-api.fly.dev",
		SiteURL:            "https://nyaa.si",
		RequestTimeoutSecs: 15,
		UISettings: UISettings{
			DateFormat: "2006-01-02",
		},
	}
}
