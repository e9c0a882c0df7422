package config

const (
	// DefaultSSID is the shared-network name used when none is configured.
	DefaultSSID = "hotspotd"
	// DefaultPassphrase is the compiled-in fallback passphrase. It must be
	// at least 8 characters for the network to come up secured; a shorter
	// value degrades the hotspot to an open network.
	DefaultPassphrase = "hotspotd-secret"

	// DefaultSubnet is the shared network block. The gateway takes the
	// lowest usable address.
	DefaultSubnet = "192.168.4.0/24"
	// DefaultFallbackDNS is advertised and relayed to when the upstream
	// interface has no resolver configured.
	DefaultFallbackDNS = "8.8.8.8"

	DefaultChannel        = 1
	DefaultMaxClients     = 4
	DefaultBeaconInterval = 100

	DefaultUpstreamInterface = "wlan0"
	DefaultSharedInterface   = "ap0"
)

// ApplyDefaults fills in missing optional values with defaults.
func (c *Config) ApplyDefaults() {
	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Timestamp == nil {
		t := true
		c.Log.Timestamp = &t
	}

	// Hotspot defaults
	if c.Hotspot.SSID == "" {
		c.Hotspot.SSID = DefaultSSID
	}
	if c.Hotspot.Passphrase == "" {
		c.Hotspot.Passphrase = DefaultPassphrase
	}
	if c.Hotspot.Channel == 0 {
		c.Hotspot.Channel = DefaultChannel
	}
	if c.Hotspot.MaxClients == 0 {
		c.Hotspot.MaxClients = DefaultMaxClients
	}
	if c.Hotspot.BeaconInterval == 0 {
		c.Hotspot.BeaconInterval = DefaultBeaconInterval
	}

	// Network defaults
	if c.Network.UpstreamInterface == "" {
		c.Network.UpstreamInterface = DefaultUpstreamInterface
	}
	if c.Network.SharedInterface == "" {
		c.Network.SharedInterface = DefaultSharedInterface
	}
	if c.Network.Subnet == "" {
		c.Network.Subnet = DefaultSubnet
	}
	if c.Network.FallbackDNS == "" {
		c.Network.FallbackDNS = DefaultFallbackDNS
	}
}

// Default returns a default configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}
