// Package wifi provides the device capability the gateway orchestrator
// drives: bringing up the shared access-point interface, switching the
// radio between client-only and dual-role operation, and reading link
// state off the upstream interface.
package wifi

import "net/netip"

// Mode is the radio operating mode.
type Mode int

const (
	// ModeClient is upstream-client-only operation.
	ModeClient Mode = iota
	// ModeDual is simultaneous upstream-client and shared-network-host
	// operation.
	ModeDual
)

func (m Mode) String() string {
	if m == ModeDual {
		return "dual"
	}
	return "client"
}

// LinkInfo describes the upstream interface's current addressing. Zero
// values mean the link is down or unconfigured.
type LinkInfo struct {
	Iface    string
	Addr     netip.Addr
	Gateway  netip.Addr
	Resolver netip.Addr
}

// IfaceConfig configures the shared-network interface and its DHCP server.
type IfaceConfig struct {
	// Addr is the gateway's own address on the shared network, also
	// advertised to clients as their router.
	Addr netip.Addr
	// Prefix is the shared network block.
	Prefix netip.Prefix
	// AdvertiseDNS is the resolver address handed to clients via DHCP.
	AdvertiseDNS netip.Addr
}

// APConfig is the shared-network identity applied to the radio.
type APConfig struct {
	SSID           string
	Passphrase     string
	Secured        bool
	Channel        int
	MaxClients     int
	BeaconInterval int
}

// Device abstracts the network hardware the gateway manages. The gateway
// orchestrator is the only caller; implementations need not be safe for
// concurrent use.
type Device interface {
	// UpstreamInfo reports the upstream interface's address, gateway and
	// configured resolver. A zero Addr means no upstream connectivity.
	UpstreamInfo() (LinkInfo, error)

	// EnsureSharedInterface creates and configures the shared-network
	// interface: static addressing plus a DHCP server restart so the
	// advertised options take effect. Safe to call when the interface
	// already exists.
	EnsureSharedInterface(cfg IfaceConfig) error

	// SetMode switches the radio operating mode.
	SetMode(mode Mode) error

	// ApplyAccessPoint applies the shared-network identity.
	ApplyAccessPoint(cfg APConfig) error

	// SharedAddress reports the shared interface's current address, or a
	// zero Addr when it has none yet.
	SharedAddress() (netip.Addr, error)
}
