package cmd

import (
	"fmt"
	"strings"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/installer"
	"github.com/noahclark556/hotspotd/internal/menu"
	"github.com/noahclark556/hotspotd/internal/service"
	"github.com/spf13/cobra"
)

var (
	installSSID       string
	installPassphrase string
	installUpstream   string
	installShared     string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the hotspotd service",
	Long: `Install the binary to /usr/local/bin, write the configuration, and
create, enable, and start the systemd service.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installSSID, "ssid", "", "network name")
	installCmd.Flags().StringVar(&installPassphrase, "passphrase", "", "WPA2 passphrase (8-63 chars, empty for open)")
	installCmd.Flags().StringVar(&installUpstream, "upstream", "", "upstream WiFi interface (default wlan0)")
	installCmd.Flags().StringVar(&installShared, "shared", "", "shared AP interface (default ap0)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	menu.Version = Version
	menu.BuildTime = BuildTime
	menu.PrintBanner()

	osInfo, err := osdetect.Detect()
	if err != nil {
		tui.PrintWarning("Could not detect OS: " + err.Error())
	} else {
		tui.PrintInfo(fmt.Sprintf("Detected OS: %s", osInfo.PrettyName))
	}

	if missing := installer.CheckHostTools(); len(missing) > 0 {
		return fmt.Errorf("missing required host tools: %s", strings.Join(missing, ", "))
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	if installSSID != "" {
		cfg.Hotspot.SSID = installSSID
	}
	if installPassphrase != "" {
		cfg.Hotspot.Passphrase = installPassphrase
	}
	if installUpstream != "" {
		cfg.Network.UpstreamInterface = installUpstream
	}
	if installShared != "" {
		cfg.Network.SharedInterface = installShared
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	security := "open"
	if len(cfg.Hotspot.Passphrase) >= 8 {
		security = "WPA2"
	}
	tui.PrintBox("Installation Summary", []string{
		tui.KV("SSID:      ", cfg.Hotspot.SSID),
		tui.KV("Security:  ", security),
		tui.KV("Subnet:    ", cfg.Network.Subnet),
		tui.KV("Upstream:  ", cfg.Network.UpstreamInterface),
		tui.KV("Shared:    ", cfg.Network.SharedInterface),
	})

	if err := installer.Install(cfg, service.DefaultManager()); err != nil {
		return err
	}

	tui.PrintSuccess("hotspotd installed")
	return nil
}
