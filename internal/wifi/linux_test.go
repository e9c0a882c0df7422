package wifi

import (
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testLinuxDevice returns a LinuxDevice with file paths redirected into a
// temp dir and every shell-out recorded instead of executed.
func testLinuxDevice(t *testing.T) (*LinuxDevice, *[]string) {
	t.Helper()

	dir := t.TempDir()
	calls := &[]string{}

	d := NewLinuxDevice("wlan0", "ap0")
	d.hostapdConf = filepath.Join(dir, "hotspotd.conf")
	d.hostapdDefault = filepath.Join(dir, "default-hostapd")
	d.dnsmasqConf = filepath.Join(dir, "dnsmasq-hotspotd.conf")
	d.run = func(name string, args ...string) error {
		*calls = append(*calls, name+" "+strings.Join(args, " "))
		return nil
	}
	return d, calls
}

func testIfaceConfig() IfaceConfig {
	return IfaceConfig{
		Addr:         netip.MustParseAddr("192.168.4.1"),
		Prefix:       netip.MustParsePrefix("192.168.4.0/24"),
		AdvertiseDNS: netip.MustParseAddr("8.8.8.8"),
	}
}

func TestEnsureSharedInterfaceWiresHostapdUnit(t *testing.T) {
	d, calls := testLinuxDevice(t)

	if err := d.EnsureSharedInterface(testIfaceConfig()); err != nil {
		t.Fatalf("EnsureSharedInterface: %v", err)
	}

	// The hostapd unit must be pointed at our config file before hostapd
	// can ever be started.
	data, err := os.ReadFile(d.hostapdDefault)
	if err != nil {
		t.Fatalf("hostapd defaults file not written: %v", err)
	}
	want := `DAEMON_CONF="` + d.hostapdConf + `"`
	if !strings.Contains(string(data), want) {
		t.Errorf("hostapd defaults = %q, want %q", data, want)
	}

	if _, err := os.ReadFile(d.dnsmasqConf); err != nil {
		t.Errorf("dnsmasq config not written: %v", err)
	}

	joined := strings.Join(*calls, "\n")
	for _, cmd := range []string{
		"iw dev wlan0 interface add ap0 type __ap",
		"systemctl unmask hostapd",
		"ip addr add 192.168.4.1/24 dev ap0",
		"systemctl restart dnsmasq",
	} {
		if !strings.Contains(joined, cmd) {
			t.Errorf("missing command %q in:\n%s", cmd, joined)
		}
	}
	if strings.Contains(joined, "start hostapd") {
		t.Errorf("hostapd started during interface setup, before any config exists:\n%s", joined)
	}
}

func TestSetModeNeverStartsHostapd(t *testing.T) {
	d, calls := testLinuxDevice(t)

	if err := d.SetMode(ModeDual); err != nil {
		t.Fatalf("SetMode(dual): %v", err)
	}
	// Dual mode raises the link only; hostapd has no config yet at this
	// point of the enable sequence.
	if len(*calls) != 1 || (*calls)[0] != "ip link set ap0 up" {
		t.Errorf("dual mode calls = %v, want only the link up", *calls)
	}

	*calls = nil
	if err := d.SetMode(ModeClient); err != nil {
		t.Fatalf("SetMode(client): %v", err)
	}
	want := []string{"systemctl stop hostapd", "ip link set ap0 down"}
	if len(*calls) != len(want) || (*calls)[0] != want[0] || (*calls)[1] != want[1] {
		t.Errorf("client mode calls = %v, want %v", *calls, want)
	}
}

func TestApplyAccessPointStartsHostapd(t *testing.T) {
	d, calls := testLinuxDevice(t)

	err := d.ApplyAccessPoint(APConfig{
		SSID:           "testnet",
		Passphrase:     "testnet-secret",
		Secured:        true,
		Channel:        1,
		MaxClients:     4,
		BeaconInterval: 100,
	})
	if err != nil {
		t.Fatalf("ApplyAccessPoint: %v", err)
	}

	data, err := os.ReadFile(d.hostapdConf)
	if err != nil {
		t.Fatalf("hostapd config not written: %v", err)
	}
	if !strings.Contains(string(data), "ssid=testnet\n") {
		t.Errorf("hostapd config missing ssid:\n%s", data)
	}

	// reload-or-restart starts the unit when inactive, so the config is
	// guaranteed to exist before hostapd's first launch.
	last := (*calls)[len(*calls)-1]
	if last != "systemctl reload-or-restart hostapd" {
		t.Errorf("last command = %q, want hostapd reload-or-restart", last)
	}
}

func TestSetDaemonConf(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{
			name:     "empty file",
			existing: "",
			want:     "DAEMON_CONF=\"/etc/hostapd/hotspotd.conf\"\n",
		},
		{
			name:     "stock commented line",
			existing: "# Defaults for hostapd\n#DAEMON_CONF=\"\"\n",
			want:     "# Defaults for hostapd\nDAEMON_CONF=\"/etc/hostapd/hotspotd.conf\"\n",
		},
		{
			name:     "existing different path replaced",
			existing: "DAEMON_CONF=\"/etc/hostapd/hostapd.conf\"\n",
			want:     "DAEMON_CONF=\"/etc/hostapd/hotspotd.conf\"\n",
		},
		{
			name:     "unrelated lines preserved",
			existing: "DAEMON_OPTS=\"-d\"\n",
			want:     "DAEMON_OPTS=\"-d\"\nDAEMON_CONF=\"/etc/hostapd/hotspotd.conf\"\n",
		},
		{
			name:     "missing trailing newline",
			existing: "DAEMON_OPTS=\"-d\"",
			want:     "DAEMON_OPTS=\"-d\"\nDAEMON_CONF=\"/etc/hostapd/hotspotd.conf\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := setDaemonConf(tt.existing, "/etc/hostapd/hotspotd.conf")
			if got != tt.want {
				t.Errorf("setDaemonConf() = %q, want %q", got, tt.want)
			}
		})
	}
}
