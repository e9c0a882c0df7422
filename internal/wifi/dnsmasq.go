package wifi

import (
	"fmt"
	"net/netip"
	"strings"
)

// renderDnsmasqConf renders the DHCP server configuration for the shared
// interface. Clients receive an address in the pool, the gateway as their
// router, and the advertised resolver as DNS (option 6).
func renderDnsmasqConf(iface string, cfg IfaceConfig) string {
	first, last := dhcpPool(cfg.Prefix, cfg.Addr)

	var b strings.Builder
	fmt.Fprintf(&b, "interface=%s\n", iface)
	b.WriteString("bind-interfaces\n")
	// The gateway relays DNS itself; dnsmasq must not claim port 53.
	b.WriteString("port=0\n")
	fmt.Fprintf(&b, "dhcp-range=%s,%s,12h\n", first, last)
	fmt.Fprintf(&b, "dhcp-option=option:router,%s\n", cfg.Addr)
	fmt.Fprintf(&b, "dhcp-option=option:dns-server,%s\n", cfg.AdvertiseDNS)
	b.WriteString("dhcp-authoritative\n")

	return b.String()
}

// dhcpPool returns the first and last pool addresses: everything usable in
// the prefix except the gateway itself and the broadcast address.
func dhcpPool(prefix netip.Prefix, gateway netip.Addr) (netip.Addr, netip.Addr) {
	first := prefix.Masked().Addr().Next()
	if first == gateway {
		first = first.Next()
	}

	last := prefix.Masked().Addr()
	for next := last.Next(); prefix.Contains(next.Next()); next = next.Next() {
		last = next
	}
	return first, last
}
