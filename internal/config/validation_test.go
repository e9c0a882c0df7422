package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "short passphrase is allowed (degrades to open)",
			mutate: func(c *Config) { c.Hotspot.Passphrase = "abc" },
		},
		{
			name:    "passphrase too long",
			mutate:  func(c *Config) { c.Hotspot.Passphrase = strings.Repeat("x", 64) },
			wantErr: "at most 63",
		},
		{
			name:    "ssid too long",
			mutate:  func(c *Config) { c.Hotspot.SSID = strings.Repeat("a", 33) },
			wantErr: "ssid",
		},
		{
			name:    "ssid with control characters",
			mutate:  func(c *Config) { c.Hotspot.SSID = "bad\x01ssid" },
			wantErr: "ssid",
		},
		{
			name:    "channel out of range",
			mutate:  func(c *Config) { c.Hotspot.Channel = 14 },
			wantErr: "channel",
		},
		{
			name:    "channel zero rejected",
			mutate:  func(c *Config) { c.Hotspot.Channel = 0 },
			wantErr: "channel",
		},
		{
			name:    "max clients zero rejected",
			mutate:  func(c *Config) { c.Hotspot.MaxClients = 0 },
			wantErr: "max_clients",
		},
		{
			name:    "max clients out of range",
			mutate:  func(c *Config) { c.Hotspot.MaxClients = 100 },
			wantErr: "max_clients",
		},
		{
			name:    "beacon interval too small",
			mutate:  func(c *Config) { c.Hotspot.BeaconInterval = 5 },
			wantErr: "beacon_interval",
		},
		{
			name:    "invalid subnet",
			mutate:  func(c *Config) { c.Network.Subnet = "not-a-cidr" },
			wantErr: "subnet",
		},
		{
			name:    "ipv6 subnet rejected",
			mutate:  func(c *Config) { c.Network.Subnet = "fd00::/64" },
			wantErr: "IPv4",
		},
		{
			name:    "subnet too small",
			mutate:  func(c *Config) { c.Network.Subnet = "192.168.4.0/31" },
			wantErr: "no room",
		},
		{
			name:    "invalid fallback dns",
			mutate:  func(c *Config) { c.Network.FallbackDNS = "dns.example" },
			wantErr: "fallback_dns",
		},
		{
			name:    "ipv6 fallback dns rejected",
			mutate:  func(c *Config) { c.Network.FallbackDNS = "2001:4860:4860::8888" },
			wantErr: "IPv4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSubnetPrefix(t *testing.T) {
	cfg := Default()
	prefix, err := cfg.SubnetPrefix()
	if err != nil {
		t.Fatalf("SubnetPrefix() error = %v", err)
	}
	if prefix.String() != DefaultSubnet {
		t.Errorf("SubnetPrefix() = %s, want %s", prefix, DefaultSubnet)
	}
}

func TestFallbackDNSAddr(t *testing.T) {
	cfg := Default()
	addr, err := cfg.FallbackDNSAddr()
	if err != nil {
		t.Fatalf("FallbackDNSAddr() error = %v", err)
	}
	if addr.String() != DefaultFallbackDNS {
		t.Errorf("FallbackDNSAddr() = %s, want %s", addr, DefaultFallbackDNS)
	}
}
