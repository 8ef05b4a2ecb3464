package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Strava  StravaConfig  `json:"strava"`
	Display DisplayConfig `json:"display"`
}

// StravaConfig holds Strava API credentials. Both fields may be empty
// when the user only imports Hevy data or runs in demo mode.
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"` // "mi" or "km"
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			DistanceUnit: "mi",
		},
	}
}

// Load reads the configuration from ~/.saker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = DefaultConfig().Display.DistanceUnit
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.saker/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // config exists, don't overwrite
	}

	example := Config{
		Strava: StravaConfig{
			ClientID:     "YOUR_CLIENT_ID",
			ClientSecret: "YOUR_CLIENT_SECRET",
		},
		Display: DisplayConfig{
			DistanceUnit: "mi",
		},
	}

	return Save(&example)
}

// Validate checks if the config is usable
func (c *Config) Validate() error {
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "mi" && c.Display.DistanceUnit != "km" {
		return fmt.Errorf("display.distance_unit must be \"mi\" or \"km\", got %q", c.Display.DistanceUnit)
	}

	// Strava credentials come as a pair or not at all.
	id, secret := c.Strava.ClientID, c.Strava.ClientSecret
	if id == "YOUR_CLIENT_ID" {
		id = ""
	}
	if secret == "YOUR_CLIENT_SECRET" {
		secret = ""
	}
	if (id == "") != (secret == "") {
		return errors.New("strava.client_id and strava.client_secret must both be set - get them from https://www.strava.com/settings/api")
	}

	return nil
}

// HasStrava reports whether real Strava credentials are configured.
func (c *Config) HasStrava() bool {
	return c.Strava.ClientID != "" && c.Strava.ClientID != "YOUR_CLIENT_ID" &&
		c.Strava.ClientSecret != "" && c.Strava.ClientSecret != "YOUR_CLIENT_SECRET"
}

// GetConfigDir returns the directory holding the config file
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".saker"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
