package dnsrelay

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ConfigDir  = "/etc/hotspotd"
	ConfigFile = "relay.yaml"
)

// FileConfig is the on-disk relay configuration. All fields are optional
// overrides; the upstream resolver itself is always discovered by the
// gateway at enable time and never configured here.
type FileConfig struct {
	Listen          string `yaml:"listen,omitempty"`
	Tick            string `yaml:"tick,omitempty"`
	UpstreamTimeout string `yaml:"upstream_timeout,omitempty"`
}

// LoadFileConfig loads relay overrides from disk. A missing file is not an
// error; it returns an empty config.
func LoadFileConfig() (*FileConfig, error) {
	return loadFileConfigFromPath(filepath.Join(ConfigDir, ConfigFile))
}

func loadFileConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read relay config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse relay config: %w", err)
	}

	return &cfg, nil
}

// SaveFileConfig writes relay overrides to disk.
func SaveFileConfig(cfg *FileConfig) error {
	if err := os.MkdirAll(ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal relay config: %w", err)
	}

	path := filepath.Join(ConfigDir, ConfigFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write relay config: %w", err)
	}

	return nil
}

// Apply merges the file overrides into a Config.
func (f *FileConfig) Apply(cfg *Config) error {
	if f.Listen != "" {
		cfg.Listen = f.Listen
	}
	if f.Tick != "" {
		d, err := time.ParseDuration(f.Tick)
		if err != nil {
			return fmt.Errorf("invalid tick %q: %w", f.Tick, err)
		}
		cfg.Tick = d
	}
	if f.UpstreamTimeout != "" {
		d, err := time.ParseDuration(f.UpstreamTimeout)
		if err != nil {
			return fmt.Errorf("invalid upstream_timeout %q: %w", f.UpstreamTimeout, err)
		}
		cfg.UpstreamTimeout = d
	}
	return nil
}
