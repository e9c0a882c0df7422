// Package nat wraps the address-translation capability that gives
// shared-network clients outbound connectivity through the upstream link.
package nat

import (
	"fmt"
	"net/netip"
	"os/exec"
)

// Translator binds and unbinds address translation for the shared network.
// Bind and Unbind carry no idempotence guarantee of their own: callers must
// not bind the same address twice without an intervening unbind. Binding
// enforces that rule.
type Translator interface {
	Bind(addr netip.Addr) error
	Unbind(addr netip.Addr) error
}

// Iptables translates shared-network traffic with a MASQUERADE rule for the
// /24 derived from the bound gateway address.
type Iptables struct{}

var _ Translator = (*Iptables)(nil)

// Bind enables translation for the shared network behind addr.
func (Iptables) Bind(addr netip.Addr) error {
	if err := run("sysctl", "-w", "net.ipv4.ip_forward=1"); err != nil {
		return err
	}
	return run("iptables", "-t", "nat", "-A", "POSTROUTING",
		"-s", subnetFor(addr).String(), "-j", "MASQUERADE")
}

// Unbind removes the translation rule installed by Bind.
func (Iptables) Unbind(addr netip.Addr) error {
	return run("iptables", "-t", "nat", "-D", "POSTROUTING",
		"-s", subnetFor(addr).String(), "-j", "MASQUERADE")
}

// subnetFor derives the shared /24 a gateway address belongs to.
func subnetFor(addr netip.Addr) netip.Prefix {
	return netip.PrefixFrom(addr, 24).Masked()
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s command failed: %s: %w", name, string(output), err)
	}
	return nil
}
