package wifi

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// DerivePSK derives the 256-bit WPA2 pre-shared key from a passphrase and
// SSID (PBKDF2-HMAC-SHA1, 4096 iterations, per IEEE 802.11i). Writing the
// derived key instead of the raw passphrase keeps the passphrase out of
// the hostapd config file.
func DerivePSK(passphrase, ssid string) string {
	key := pbkdf2.Key([]byte(passphrase), []byte(ssid), 4096, 32, sha1.New)
	return hex.EncodeToString(key)
}

// renderHostapdConf renders a hostapd configuration for the shared network.
func renderHostapdConf(iface string, cfg APConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "interface=%s\n", iface)
	b.WriteString("driver=nl80211\n")
	fmt.Fprintf(&b, "ssid=%s\n", cfg.SSID)
	b.WriteString("hw_mode=g\n")
	fmt.Fprintf(&b, "channel=%d\n", cfg.Channel)
	fmt.Fprintf(&b, "max_num_sta=%d\n", cfg.MaxClients)
	fmt.Fprintf(&b, "beacon_int=%d\n", cfg.BeaconInterval)

	if cfg.Secured {
		b.WriteString("wpa=2\n")
		b.WriteString("wpa_key_mgmt=WPA-PSK\n")
		b.WriteString("rsn_pairwise=CCMP\n")
		fmt.Fprintf(&b, "wpa_psk=%s\n", DerivePSK(cfg.Passphrase, cfg.SSID))
	} else {
		// Open network: the degrade-to-open passphrase policy is decided
		// by the gateway, not here.
		b.WriteString("auth_algs=1\n")
	}

	return b.String()
}
