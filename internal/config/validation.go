package config

import (
	"fmt"
	"net/netip"
	"regexp"
)

// SSIDs are limited to 32 bytes by 802.11; keep to printable ASCII.
var ssidRegex = regexp.MustCompile(`^[\x20-\x7e]{1,32}$`)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.validateHotspot(); err != nil {
		return err
	}
	return c.validateNetwork()
}

func (c *Config) validateHotspot() error {
	h := &c.Hotspot

	if h.SSID != "" && !ssidRegex.MatchString(h.SSID) {
		return fmt.Errorf("hotspot: ssid must be 1-32 printable ASCII characters")
	}

	// A passphrase shorter than 8 characters is not rejected: the gateway
	// deliberately degrades to an open network in that case. WPA2 does cap
	// passphrases at 63 characters.
	if len(h.Passphrase) > 63 {
		return fmt.Errorf("hotspot: passphrase must be at most 63 characters")
	}

	if h.Channel < 1 || h.Channel > 13 {
		return fmt.Errorf("hotspot: channel must be between 1 and 13")
	}

	if h.MaxClients < 1 || h.MaxClients > 32 {
		return fmt.Errorf("hotspot: max_clients must be between 1 and 32")
	}

	if h.BeaconInterval != 0 && (h.BeaconInterval < 15 || h.BeaconInterval > 65535) {
		return fmt.Errorf("hotspot: beacon_interval must be between 15 and 65535")
	}

	return nil
}

func (c *Config) validateNetwork() error {
	n := &c.Network

	if n.Subnet != "" {
		prefix, err := netip.ParsePrefix(n.Subnet)
		if err != nil {
			return fmt.Errorf("network: invalid subnet %q: %w", n.Subnet, err)
		}
		if !prefix.Addr().Is4() {
			return fmt.Errorf("network: subnet must be IPv4")
		}
		if prefix.Bits() > 30 {
			return fmt.Errorf("network: subnet %q leaves no room for clients", n.Subnet)
		}
	}

	if n.FallbackDNS != "" {
		addr, err := netip.ParseAddr(n.FallbackDNS)
		if err != nil {
			return fmt.Errorf("network: invalid fallback_dns %q: %w", n.FallbackDNS, err)
		}
		if !addr.Is4() {
			return fmt.Errorf("network: fallback_dns must be IPv4")
		}
	}

	return nil
}

// Subnet returns the parsed shared-network prefix.
// Validate must have passed for the result to be meaningful.
func (c *Config) SubnetPrefix() (netip.Prefix, error) {
	return netip.ParsePrefix(c.Network.Subnet)
}

// FallbackDNSAddr returns the parsed fallback resolver address.
func (c *Config) FallbackDNSAddr() (netip.Addr, error) {
	return netip.ParseAddr(c.Network.FallbackDNS)
}
