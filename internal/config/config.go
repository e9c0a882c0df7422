// Package config provides configuration types and loading for hotspotd.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigDir  = "/etc/hotspotd"
	ConfigFile = "config.json"
)

// Config is the main hotspotd configuration.
type Config struct {
	Log     LogConfig     `json:"log,omitempty"`
	Hotspot HotspotConfig `json:"hotspot,omitempty"`
	Network NetworkConfig `json:"network,omitempty"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level     string `json:"level,omitempty"`
	Output    string `json:"output,omitempty"`
	Timestamp *bool  `json:"timestamp,omitempty"`
}

// HotspotConfig configures the shared-network identity advertised to clients.
type HotspotConfig struct {
	SSID           string `json:"ssid,omitempty"`
	Passphrase     string `json:"passphrase,omitempty"`
	Channel        int    `json:"channel,omitempty"`
	MaxClients     int    `json:"max_clients,omitempty"`
	BeaconInterval int    `json:"beacon_interval,omitempty"`
}

// NetworkConfig configures the interfaces and addressing the gateway uses.
type NetworkConfig struct {
	UpstreamInterface string `json:"upstream_interface,omitempty"`
	SharedInterface   string `json:"shared_interface,omitempty"`
	Subnet            string `json:"subnet,omitempty"`
	FallbackDNS       string `json:"fallback_dns,omitempty"`
}

// Load reads the configuration from disk.
func Load() (*Config, error) {
	return LoadFromPath(filepath.Join(ConfigDir, ConfigFile))
}

// LoadFromPath reads the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the configuration from disk, or returns a default config if not found.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	return c.SaveToPath(filepath.Join(ConfigDir, ConfigFile))
}

// SaveToPath writes the configuration to a specific path.
func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ConfigExists checks if the config file exists.
func ConfigExists() bool {
	_, err := os.Stat(filepath.Join(ConfigDir, ConfigFile))
	return err == nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() string {
	return filepath.Join(ConfigDir, ConfigFile)
}
