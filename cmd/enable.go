package cmd

import (
	"fmt"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/service"
	"github.com/spf13/cobra"
)

var (
	enableSSID       string
	enablePassphrase string
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the hotspot",
	Long: `Start the hotspot through the installed systemd service. SSID and
passphrase flags override the stored configuration; a passphrase
shorter than 8 characters creates an open network.`,
	RunE: runEnable,
}

func init() {
	enableCmd.Flags().StringVar(&enableSSID, "ssid", "", "network name (overrides config)")
	enableCmd.Flags().StringVar(&enablePassphrase, "passphrase", "", "WPA2 passphrase (overrides config)")
}

func runEnable(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr := service.DefaultManager()
	if !mgr.IsServiceInstalled(service.ServiceName) {
		return fmt.Errorf("hotspotd is not installed. Run 'hotspotd install' first")
	}

	if enableSSID != "" || enablePassphrase != "" {
		cfg, err := config.LoadOrDefault()
		if err != nil {
			return err
		}
		if enableSSID != "" {
			cfg.Hotspot.SSID = enableSSID
		}
		if enablePassphrase != "" {
			cfg.Hotspot.Passphrase = enablePassphrase
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
	}

	if mgr.IsServiceActive(service.ServiceName) {
		return mgr.RestartService(service.ServiceName)
	}
	if err := mgr.StartService(service.ServiceName); err != nil {
		return err
	}
	fmt.Println("hotspot starting, check 'hotspotd status'")
	return nil
}
