package wifi

import (
	"fmt"
	"net"
	"net/netip"
	"os"
	"os/exec"
	"strings"
)

const (
	hostapdConfPath    = "/etc/hostapd/hotspotd.conf"
	hostapdDefaultPath = "/etc/default/hostapd"
	dnsmasqConfPath    = "/etc/dnsmasq.d/hotspotd.conf"
	resolvConfPath     = "/etc/resolv.conf"
)

// LinuxDevice drives a Linux wireless interface pair: an upstream client
// interface and a virtual AP interface carved off the same radio, with
// hostapd hosting the shared network and dnsmasq serving DHCP on it.
type LinuxDevice struct {
	UpstreamIface string
	SharedIface   string

	// Paths and command runner, overridable in tests.
	hostapdConf    string
	hostapdDefault string
	dnsmasqConf    string
	run            func(name string, args ...string) error
}

var _ Device = (*LinuxDevice)(nil)

// NewLinuxDevice creates a device around the named interfaces.
func NewLinuxDevice(upstream, shared string) *LinuxDevice {
	return &LinuxDevice{
		UpstreamIface:  upstream,
		SharedIface:    shared,
		hostapdConf:    hostapdConfPath,
		hostapdDefault: hostapdDefaultPath,
		dnsmasqConf:    dnsmasqConfPath,
		run:            runCommand,
	}
}

// UpstreamInfo implements Device.
func (d *LinuxDevice) UpstreamInfo() (LinkInfo, error) {
	info := LinkInfo{Iface: d.UpstreamIface}

	addr, err := interfaceAddr(d.UpstreamIface)
	if err != nil {
		return info, err
	}
	info.Addr = addr

	info.Gateway = defaultGateway(d.UpstreamIface)
	info.Resolver = systemResolver()

	return info, nil
}

// EnsureSharedInterface implements Device.
func (d *LinuxDevice) EnsureSharedInterface(cfg IfaceConfig) error {
	// Creating the virtual AP interface fails harmlessly when it already
	// exists; only the addressing below must succeed.
	d.run("iw", "dev", d.UpstreamIface, "interface", "add",
		d.SharedIface, "type", "__ap")

	if err := d.wireHostapdUnit(); err != nil {
		return err
	}

	if err := d.run("ip", "addr", "flush", "dev", d.SharedIface); err != nil {
		return err
	}
	cidr := fmt.Sprintf("%s/%d", cfg.Addr, cfg.Prefix.Bits())
	if err := d.run("ip", "addr", "add", cidr, "dev", d.SharedIface); err != nil {
		return err
	}
	if err := d.run("ip", "link", "set", d.SharedIface, "up"); err != nil {
		return err
	}

	conf := renderDnsmasqConf(d.SharedIface, cfg)
	if err := os.WriteFile(d.dnsmasqConf, []byte(conf), 0644); err != nil {
		return fmt.Errorf("failed to write dnsmasq config: %w", err)
	}

	// Restart the DHCP server so the new options take effect.
	return d.run("systemctl", "restart", "dnsmasq")
}

// wireHostapdUnit points the distribution's hostapd unit at our config
// file. Debian ships hostapd masked and launches it with the path in
// DAEMON_CONF from /etc/default/hostapd; without both pieces the unit
// would start with no configuration at all.
func (d *LinuxDevice) wireHostapdUnit() error {
	// Not masked on every distribution; a failure here is harmless.
	d.run("systemctl", "unmask", "hostapd")

	data, err := os.ReadFile(d.hostapdDefault)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", d.hostapdDefault, err)
	}

	updated := setDaemonConf(string(data), d.hostapdConf)
	if err := os.WriteFile(d.hostapdDefault, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.hostapdDefault, err)
	}
	return nil
}

// setDaemonConf rewrites the DAEMON_CONF line of an /etc/default/hostapd
// body, replacing the stock commented-out line when present.
func setDaemonConf(existing, confPath string) string {
	line := fmt.Sprintf("DAEMON_CONF=%q", confPath)

	lines := strings.Split(existing, "\n")
	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		if strings.HasPrefix(trimmed, "DAEMON_CONF=") {
			lines[i] = line
			return strings.Join(lines, "\n")
		}
	}

	if existing != "" && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing + line + "\n"
}

// SetMode implements Device. Dual mode only raises the AP link; hostapd
// itself is started by ApplyAccessPoint, which runs strictly after the
// mode switch and is the first point a config file exists for it.
func (d *LinuxDevice) SetMode(mode Mode) error {
	switch mode {
	case ModeDual:
		return d.run("ip", "link", "set", d.SharedIface, "up")
	case ModeClient:
		if err := d.run("systemctl", "stop", "hostapd"); err != nil {
			return err
		}
		return d.run("ip", "link", "set", d.SharedIface, "down")
	default:
		return fmt.Errorf("unknown mode %d", mode)
	}
}

// ApplyAccessPoint implements Device. reload-or-restart also starts
// hostapd when it is not yet running, covering the first enable.
func (d *LinuxDevice) ApplyAccessPoint(cfg APConfig) error {
	conf := renderHostapdConf(d.SharedIface, cfg)
	if err := os.WriteFile(d.hostapdConf, []byte(conf), 0600); err != nil {
		return fmt.Errorf("failed to write hostapd config: %w", err)
	}
	return d.run("systemctl", "reload-or-restart", "hostapd")
}

// SharedAddress implements Device.
func (d *LinuxDevice) SharedAddress() (netip.Addr, error) {
	return interfaceAddr(d.SharedIface)
}

// interfaceAddr returns the first IPv4 address on the named interface, or
// a zero Addr when the interface is down, missing, or unconfigured.
func interfaceAddr(name string) (netip.Addr, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return netip.Addr{}, nil
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("failed to read addresses of %s: %w", name, err)
	}

	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipnet.IP.To4()
		if ip == nil {
			continue
		}
		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			continue
		}
		return addr, nil
	}
	return netip.Addr{}, nil
}

// defaultGateway parses the default route for the named interface. A zero
// Addr means no default route exists.
func defaultGateway(iface string) netip.Addr {
	out, err := exec.Command("ip", "-4", "route", "show", "default", "dev", iface).Output()
	if err != nil {
		return netip.Addr{}
	}

	// "default via 192.168.1.1 proto dhcp ..."
	fields := strings.Fields(string(out))
	for i, f := range fields {
		if f == "via" && i+1 < len(fields) {
			if addr, err := netip.ParseAddr(fields[i+1]); err == nil {
				return addr
			}
		}
	}
	return netip.Addr{}
}

// systemResolver reads the first nameserver from resolv.conf. A zero Addr
// means none is configured.
func systemResolver() netip.Addr {
	data, err := os.ReadFile(resolvConfPath)
	if err != nil {
		return netip.Addr{}
	}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			addr, err := netip.ParseAddr(fields[1])
			if err == nil && addr.Is4() {
				return addr
			}
		}
	}
	return netip.Addr{}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s command failed: %s: %w", name, string(output), err)
	}
	return nil
}
