package wifi

import (
	"strings"
	"testing"
)

func TestDerivePSK(t *testing.T) {
	// Known vector from IEEE 802.11i annex: passphrase "password",
	// SSID "IEEE".
	got := DerivePSK("password", "IEEE")
	want := "f42c6fc52df0ebef9ebb4b90b38a5f902e83fe1b135a70e23aed762e9710a12e"
	if got != want {
		t.Errorf("DerivePSK() = %s, want %s", got, want)
	}
}

func TestRenderHostapdConfSecured(t *testing.T) {
	conf := renderHostapdConf("ap0", APConfig{
		SSID:           "test-net",
		Passphrase:     "supersecret",
		Secured:        true,
		Channel:        6,
		MaxClients:     8,
		BeaconInterval: 100,
	})

	for _, want := range []string{
		"interface=ap0\n",
		"ssid=test-net\n",
		"channel=6\n",
		"max_num_sta=8\n",
		"beacon_int=100\n",
		"wpa=2\n",
		"wpa_psk=" + DerivePSK("supersecret", "test-net") + "\n",
	} {
		if !strings.Contains(conf, want) {
			t.Errorf("config missing %q:\n%s", want, conf)
		}
	}

	if strings.Contains(conf, "supersecret") {
		t.Error("raw passphrase leaked into hostapd config")
	}
}

func TestRenderHostapdConfOpen(t *testing.T) {
	conf := renderHostapdConf("ap0", APConfig{
		SSID:           "open-net",
		Secured:        false,
		Channel:        1,
		MaxClients:     4,
		BeaconInterval: 100,
	})

	if strings.Contains(conf, "wpa") {
		t.Errorf("open network config contains WPA settings:\n%s", conf)
	}
	if !strings.Contains(conf, "ssid=open-net\n") {
		t.Errorf("config missing ssid:\n%s", conf)
	}
}
