// Package gateway implements the enable/disable orchestration that turns
// the device into a shared internet gateway: shared-interface setup,
// dual-role mode switching, translation binding, and supervision of the
// DNS relay worker.
package gateway

import (
	"fmt"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"github.com/noahclark556/hotspotd/internal/dnsrelay"
	"github.com/noahclark556/hotspotd/internal/log"
	"github.com/noahclark556/hotspotd/internal/nat"
	"github.com/noahclark556/hotspotd/internal/wifi"
)

const (
	// modeSettle lets the radio stabilize after a mode switch; config
	// applied immediately after a switch may be silently dropped.
	defaultModeSettle = 500 * time.Millisecond

	// Address poll budget for the shared interface: 20 x 100ms.
	defaultAddrPollAttempts = 20
	defaultAddrPollInterval = 100 * time.Millisecond
)

// minPassphraseLen is the WPA2 minimum. Anything shorter degrades the
// hotspot to an open network; that is documented operator-facing policy,
// not an oversight.
const minPassphraseLen = 8

// Config carries the gateway's compiled-in and operator configuration.
type Config struct {
	// SSID and Passphrase are the defaults used when Enable is called
	// without explicit values.
	SSID       string
	Passphrase string

	Channel        int
	MaxClients     int
	BeaconInterval int

	// Subnet is the shared network block; the gateway takes the lowest
	// usable address.
	Subnet netip.Prefix

	// FallbackDNS is advertised and relayed to when the upstream link has
	// no resolver configured.
	FallbackDNS netip.Addr

	// Relay configures the DNS relay worker. The Upstream field is
	// ignored; the resolver is discovered at enable time.
	Relay dnsrelay.Config

	// Timing knobs; zero values select the defaults above.
	ModeSettle       time.Duration
	AddrPollAttempts int
	AddrPollInterval time.Duration
	RebindSettle     time.Duration
}

// Result reports the effective hotspot parameters after a successful
// enable, for operator-facing output.
type Result struct {
	SSID    string
	Secured bool
	Address netip.Addr
	// Resolver is the upstream resolver DNS queries are relayed to.
	Resolver netip.Addr
	// Gateway is the upstream next-hop client traffic is translated
	// towards.
	Gateway netip.Addr
}

// Status is a point-in-time snapshot of the gateway state.
type Status struct {
	Enabled      bool
	SharedReady  bool
	BoundAddress netip.Addr
	Bound        bool
	Resolver     netip.Addr
	RelayRunning bool
}

// newWorker builds a relay worker; swapped in tests.
type newWorkerFunc func(cfg dnsrelay.Config) dnsrelay.Worker

// Gateway sequences hotspot enable and disable. Enable and Disable are
// serialized by a single mutex; IsEnabled is a lock-free read safe from
// any goroutine.
type Gateway struct {
	mu sync.Mutex

	dev       wifi.Device
	binding   *nat.Binding
	cfg       Config
	newWorker newWorkerFunc

	// Owned state, mutated only under mu.
	enabled     atomic.Bool
	sharedReady bool
	resolver    netip.Addr
	worker      dnsrelay.Worker
	lastResult  Result
}

// New creates a gateway around a device and a translation capability.
func New(dev wifi.Device, tr nat.Translator, cfg Config) *Gateway {
	if cfg.ModeSettle == 0 {
		cfg.ModeSettle = defaultModeSettle
	}
	if cfg.AddrPollAttempts == 0 {
		cfg.AddrPollAttempts = defaultAddrPollAttempts
	}
	if cfg.AddrPollInterval == 0 {
		cfg.AddrPollInterval = defaultAddrPollInterval
	}

	return &Gateway{
		dev:     dev,
		binding: nat.NewBinding(tr, cfg.RebindSettle),
		cfg:     cfg,
		newWorker: func(c dnsrelay.Config) dnsrelay.Worker {
			return dnsrelay.New(c)
		},
	}
}

// IsEnabled reports whether the hotspot is up. Pure read, no side
// effects, safe to call from any goroutine.
func (g *Gateway) IsEnabled() bool {
	return g.enabled.Load()
}

// Status returns a consistent snapshot of the gateway state.
func (g *Gateway) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	bound, ok := g.binding.Bound()
	return Status{
		Enabled:      g.enabled.Load(),
		SharedReady:  g.sharedReady,
		BoundAddress: bound,
		Bound:        ok,
		Resolver:     g.resolver,
		RelayRunning: g.worker != nil && g.worker.Running(),
	}
}

// Enable brings the hotspot up. Empty ssid or passphrase select the
// configured defaults; a passphrase shorter than 8 characters degrades
// the network to open. Calling Enable while already enabled is a no-op
// returning the previous result.
func (g *Gateway) Enable(ssid, passphrase string) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.enabled.Load() {
		log.Info("hotspot already enabled")
		return g.lastResult, nil
	}

	// Step 1: there must be upstream connectivity to share. Fail before
	// touching anything.
	up, err := g.dev.UpstreamInfo()
	if err != nil || !isUsable(up.Addr) {
		return Result{}, ErrPreconditionFailed
	}

	gwAddr := g.gatewayAddr()

	// Step 2: one-time shared interface setup. Later enables skip it.
	if !g.sharedReady {
		advertise := up.Resolver
		if !isUsable(advertise) {
			advertise = g.cfg.FallbackDNS
			log.Info("upstream has no resolver, advertising fallback %s", advertise)
		}

		if err := g.dev.EnsureSharedInterface(wifi.IfaceConfig{
			Addr:         gwAddr,
			Prefix:       g.cfg.Subnet,
			AdvertiseDNS: advertise,
		}); err != nil {
			return Result{}, fmt.Errorf("shared interface setup failed: %w", err)
		}
		g.sharedReady = true
		log.Info("shared interface configured: %s", gwAddr)
	}

	// Step 3: switch to dual-role operation and let the radio settle.
	if err := g.dev.SetMode(wifi.ModeDual); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrModeSwitchFailed, err)
	}
	time.Sleep(g.cfg.ModeSettle)

	// Step 4: apply shared-network identity.
	ap := g.accessPointConfig(ssid, passphrase)
	if err := g.dev.ApplyAccessPoint(ap); err != nil {
		return Result{}, fmt.Errorf("access point config failed: %w", err)
	}

	// Step 5: wait for the shared interface to acquire an address.
	var shared netip.Addr
	ready, err := pollUntil(g.cfg.AddrPollAttempts, g.cfg.AddrPollInterval, func() (bool, error) {
		addr, err := g.dev.SharedAddress()
		if err == nil && isUsable(addr) {
			shared = addr
			return true, nil
		}
		return false, nil
	})
	if err != nil || !ready {
		return Result{}, ErrInterfaceNotReady
	}

	// Step 6: re-read the upstream link; it may have changed underneath
	// us since the precondition check.
	up, err = g.dev.UpstreamInfo()
	if err != nil || !isUsable(up.Addr) {
		return Result{}, ErrUpstreamUnavailable
	}
	resolver := up.Resolver
	if !isUsable(resolver) {
		resolver = g.cfg.FallbackDNS
	}

	// Step 7: bind translation on the shared address. Rebind unbinds any
	// stale binding first.
	if err := g.binding.Rebind(shared); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrTranslationBindFailed, err)
	}

	// Step 8-9: mark enabled, then start the relay worker. A relay bind
	// failure aborts only the worker; translation stays up.
	g.enabled.Store(true)
	g.resolver = resolver

	if g.worker == nil || !g.worker.Running() {
		relayCfg := g.cfg.Relay
		relayCfg.Upstream = resolver
		w := g.newWorker(relayCfg)
		if err := w.Start(); err != nil {
			log.Error("dns relay failed to start, clients must configure DNS manually: %v", err)
		} else {
			g.worker = w
		}
	}

	g.lastResult = Result{
		SSID:     ap.SSID,
		Secured:  ap.Secured,
		Address:  shared,
		Resolver: resolver,
		Gateway:  up.Gateway,
	}
	log.Info("hotspot enabled: ssid=%s secured=%t addr=%s dns=%s upstream-gw=%s",
		ap.SSID, ap.Secured, shared, resolver, up.Gateway)
	return g.lastResult, nil
}

// Disable tears the hotspot down: relay worker first, then translation,
// then the mode switch. The sequence is one-directional; a mode revert
// failure is surfaced only after all resources are reclaimed.
func (g *Gateway) Disable() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.enabled.Load() {
		log.Info("hotspot already disabled")
		return nil
	}
	g.enabled.Store(false)

	if g.worker != nil {
		g.worker.Stop()
		g.worker = nil
	}

	if err := g.binding.Release(); err != nil {
		log.Warn("translation unbind failed: %v", err)
	}

	if err := g.dev.SetMode(wifi.ModeClient); err != nil {
		return fmt.Errorf("mode revert failed: %w", err)
	}

	log.Info("hotspot disabled")
	return nil
}

// accessPointConfig resolves the effective identity. Passphrase policy:
// a supplied passphrase of 8+ characters wins; else a configured default
// of 8+ characters; else the network comes up open.
func (g *Gateway) accessPointConfig(ssid, passphrase string) wifi.APConfig {
	if ssid == "" {
		ssid = g.cfg.SSID
	}

	cfg := wifi.APConfig{
		SSID:           ssid,
		Channel:        g.cfg.Channel,
		MaxClients:     g.cfg.MaxClients,
		BeaconInterval: g.cfg.BeaconInterval,
	}

	switch {
	case len(passphrase) >= minPassphraseLen:
		cfg.Passphrase = passphrase
		cfg.Secured = true
	case len(g.cfg.Passphrase) >= minPassphraseLen:
		cfg.Passphrase = g.cfg.Passphrase
		cfg.Secured = true
	default:
		log.Warn("no passphrase of %d+ characters available, creating open network", minPassphraseLen)
	}

	return cfg
}

// gatewayAddr is the lowest usable address of the shared subnet.
func (g *Gateway) gatewayAddr() netip.Addr {
	return g.cfg.Subnet.Masked().Addr().Next()
}

// isUsable reports whether addr is a real, non-zero address.
func isUsable(addr netip.Addr) bool {
	return addr.IsValid() && !addr.IsUnspecified()
}
