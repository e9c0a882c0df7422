// Package dnsrelay provides the transparent DNS relay the gateway runs on
// the shared network. Queries arriving on port 53 are forwarded
// byte-for-byte to the upstream resolver and the reply is passed back
// unmodified, so clients need no resolver configuration of their own.
package dnsrelay

import (
	"fmt"
	"net"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"github.com/noahclark556/hotspotd/internal/log"
)

const (
	// MaxPacketSize is the largest DNS datagram we relay.
	MaxPacketSize = 4096

	// DefaultTick is the listening socket's receive timeout. It is a
	// liveness check, not a protocol timeout: each expiry re-checks the
	// stop signal, bounding shutdown latency.
	DefaultTick = 1 * time.Second

	// DefaultUpstreamTimeout bounds the wait for an upstream reply.
	DefaultUpstreamTimeout = 2 * time.Second

	// DefaultStopGrace is how long Stop waits for the loop to observe the
	// stop signal before reclaiming the socket.
	DefaultStopGrace = 200 * time.Millisecond

	dnsPort = 53
)

// Config configures a Relay.
type Config struct {
	// Listen is the listening address, ":53" by default.
	Listen string
	// Upstream is the resolver queries are relayed to.
	Upstream netip.Addr
	// UpstreamPort defaults to 53.
	UpstreamPort uint16

	Tick            time.Duration
	UpstreamTimeout time.Duration
	StopGrace       time.Duration
}

// Worker is the relay surface the gateway supervises.
type Worker interface {
	// Start binds the listening socket and launches the relay loop.
	Start() error

	// Stop signals the loop, waits a bounded grace period, then reclaims
	// the listening socket whether or not the loop exited cleanly.
	Stop()

	// Running reports whether the relay loop is alive.
	Running() bool
}

// Relay is a sequential pass-through UDP relay: one query in flight at a
// time, one transient upstream socket per query.
type Relay struct {
	cfg  Config
	conn *net.UDPConn

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool

	relayed atomic.Uint64
	dropped atomic.Uint64
}

var _ Worker = (*Relay)(nil)

// New creates a relay. Zero durations select the defaults.
func New(cfg Config) *Relay {
	if cfg.Listen == "" {
		cfg.Listen = fmt.Sprintf(":%d", dnsPort)
	}
	if cfg.UpstreamPort == 0 {
		cfg.UpstreamPort = dnsPort
	}
	if cfg.Tick == 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.UpstreamTimeout == 0 {
		cfg.UpstreamTimeout = DefaultUpstreamTimeout
	}
	if cfg.StopGrace == 0 {
		cfg.StopGrace = DefaultStopGrace
	}

	return &Relay{
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start implements Worker. A bind failure aborts only the relay; the
// caller decides whether the gateway stays up without DNS.
func (r *Relay) Start() error {
	addr, err := net.ResolveUDPAddr("udp", r.cfg.Listen)
	if err != nil {
		return fmt.Errorf("failed to resolve relay address: %w", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind relay socket: %w", err)
	}
	r.conn = conn
	r.running.Store(true)

	go r.serve()

	log.Info("dns relay: listening on %s, forwarding to %s", r.cfg.Listen, r.upstreamAddr())
	return nil
}

// Stop implements Worker. Safe to call more than once.
func (r *Relay) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })

	select {
	case <-r.done:
	case <-time.After(r.cfg.StopGrace):
	}

	// Reclaim the socket even if the loop is still mid-wait; the pending
	// read fails immediately and the loop exits.
	if r.conn != nil {
		r.conn.Close()
	}
}

// Running implements Worker.
func (r *Relay) Running() bool {
	return r.running.Load()
}

// Stats returns the number of relayed and dropped queries.
func (r *Relay) Stats() (relayed, dropped uint64) {
	return r.relayed.Load(), r.dropped.Load()
}

// serve relays one query per iteration until stopped or a hard receive
// error occurs.
func (r *Relay) serve() {
	defer func() {
		r.conn.Close()
		r.running.Store(false)
		close(r.done)
		log.Info("dns relay: stopped")
	}()

	buf := make([]byte, MaxPacketSize)

	for {
		select {
		case <-r.stop:
			return
		default:
		}

		r.conn.SetReadDeadline(time.Now().Add(r.cfg.Tick))

		n, client, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				// Tick expired; loop back to re-check the stop signal.
				continue
			}
			select {
			case <-r.stop:
				return
			default:
			}
			// Hard receive error: fatal to this worker only. The next
			// gateway enable spawns a fresh one.
			log.Error("dns relay: receive failed: %v", err)
			return
		}

		if n == 0 {
			continue
		}
		r.relayQuery(buf[:n], client)
	}
}

// relayQuery forwards one query upstream and passes the reply back. Every
// failure is a silent drop; the client retries on its own resolver
// timeout.
func (r *Relay) relayQuery(query []byte, client *net.UDPAddr) {
	upstream, err := net.DialUDP("udp", nil, net.UDPAddrFromAddrPort(r.upstreamAddr()))
	if err != nil {
		r.dropped.Add(1)
		log.Debug("dns relay: upstream dial failed: %v", err)
		return
	}
	defer upstream.Close()

	upstream.SetDeadline(time.Now().Add(r.cfg.UpstreamTimeout))

	if _, err := upstream.Write(query); err != nil {
		r.dropped.Add(1)
		log.Debug("dns relay: upstream send failed: %v", err)
		return
	}

	reply := make([]byte, MaxPacketSize)
	n, err := upstream.Read(reply)
	if err != nil || n == 0 {
		r.dropped.Add(1)
		return
	}

	if _, err := r.conn.WriteToUDP(reply[:n], client); err != nil {
		r.dropped.Add(1)
		log.Debug("dns relay: client send failed: %v", err)
		return
	}
	r.relayed.Add(1)
}

func (r *Relay) upstreamAddr() netip.AddrPort {
	return netip.AddrPortFrom(r.cfg.Upstream, r.cfg.UpstreamPort)
}
