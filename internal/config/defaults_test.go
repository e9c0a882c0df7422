package config

import "testing"

func TestApplyDefaultsEmpty(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Hotspot.SSID != DefaultSSID {
		t.Errorf("SSID = %q, want %q", cfg.Hotspot.SSID, DefaultSSID)
	}
	if cfg.Hotspot.Passphrase != DefaultPassphrase {
		t.Errorf("Passphrase = %q, want %q", cfg.Hotspot.Passphrase, DefaultPassphrase)
	}
	if cfg.Hotspot.Channel != DefaultChannel {
		t.Errorf("Channel = %d, want %d", cfg.Hotspot.Channel, DefaultChannel)
	}
	if cfg.Hotspot.MaxClients != DefaultMaxClients {
		t.Errorf("MaxClients = %d, want %d", cfg.Hotspot.MaxClients, DefaultMaxClients)
	}
	if cfg.Hotspot.BeaconInterval != DefaultBeaconInterval {
		t.Errorf("BeaconInterval = %d, want %d", cfg.Hotspot.BeaconInterval, DefaultBeaconInterval)
	}
	if cfg.Network.Subnet != DefaultSubnet {
		t.Errorf("Subnet = %q, want %q", cfg.Network.Subnet, DefaultSubnet)
	}
	if cfg.Network.FallbackDNS != DefaultFallbackDNS {
		t.Errorf("FallbackDNS = %q, want %q", cfg.Network.FallbackDNS, DefaultFallbackDNS)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Timestamp == nil || !*cfg.Log.Timestamp {
		t.Error("Log.Timestamp should default to true")
	}
}

func TestApplyDefaultsPreservesExisting(t *testing.T) {
	cfg := &Config{
		Hotspot: HotspotConfig{
			SSID:    "my-net",
			Channel: 6,
		},
		Network: NetworkConfig{
			UpstreamInterface: "eth0",
		},
	}
	cfg.ApplyDefaults()

	if cfg.Hotspot.SSID != "my-net" {
		t.Errorf("SSID = %q, want %q", cfg.Hotspot.SSID, "my-net")
	}
	if cfg.Hotspot.Channel != 6 {
		t.Errorf("Channel = %d, want 6", cfg.Hotspot.Channel)
	}
	if cfg.Network.UpstreamInterface != "eth0" {
		t.Errorf("UpstreamInterface = %q, want %q", cfg.Network.UpstreamInterface, "eth0")
	}
	// Unset values still filled in
	if cfg.Hotspot.MaxClients != DefaultMaxClients {
		t.Errorf("MaxClients = %d, want %d", cfg.Hotspot.MaxClients, DefaultMaxClients)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}
