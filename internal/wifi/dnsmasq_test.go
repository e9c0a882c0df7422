package wifi

import (
	"net/netip"
	"strings"
	"testing"
)

func TestRenderDnsmasqConf(t *testing.T) {
	conf := renderDnsmasqConf("ap0", IfaceConfig{
		Addr:         netip.MustParseAddr("192.168.4.1"),
		Prefix:       netip.MustParsePrefix("192.168.4.0/24"),
		AdvertiseDNS: netip.MustParseAddr("192.168.4.1"),
	})

	for _, want := range []string{
		"interface=ap0\n",
		"port=0\n",
		"dhcp-range=192.168.4.2,192.168.4.254,12h\n",
		"dhcp-option=option:router,192.168.4.1\n",
		"dhcp-option=option:dns-server,192.168.4.1\n",
	} {
		if !strings.Contains(conf, want) {
			t.Errorf("config missing %q:\n%s", want, conf)
		}
	}
}

func TestDhcpPool(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		gateway string
		first   string
		last    string
	}{
		{
			name:    "gateway at lowest usable",
			prefix:  "192.168.4.0/24",
			gateway: "192.168.4.1",
			first:   "192.168.4.2",
			last:    "192.168.4.254",
		},
		{
			name:    "gateway elsewhere keeps first free",
			prefix:  "10.0.0.0/24",
			gateway: "10.0.0.10",
			first:   "10.0.0.1",
			last:    "10.0.0.254",
		},
		{
			name:    "small subnet",
			prefix:  "192.168.4.0/29",
			gateway: "192.168.4.1",
			first:   "192.168.4.2",
			last:    "192.168.4.6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := dhcpPool(
				netip.MustParsePrefix(tt.prefix),
				netip.MustParseAddr(tt.gateway),
			)
			if first.String() != tt.first {
				t.Errorf("first = %s, want %s", first, tt.first)
			}
			if last.String() != tt.last {
				t.Errorf("last = %s, want %s", last, tt.last)
			}
		})
	}
}
