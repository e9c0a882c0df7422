package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/net2share/go-corelib/osdetect"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/service"
	"github.com/spf13/cobra"
)

var statusVerbose bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hotspot status",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusVerbose, "verbose", "v", false, "include full systemctl output")
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	mgr := service.DefaultManager()
	if !mgr.IsServiceInstalled(service.ServiceName) {
		fmt.Printf("Service:   %s\n", yellow("not installed"))
		fmt.Println("Run 'hotspotd install' to set up the service.")
		return nil
	}

	state := red("stopped")
	if mgr.IsServiceActive(service.ServiceName) {
		state = green("running")
	}
	boot := red("disabled")
	if mgr.IsServiceEnabled(service.ServiceName) {
		boot = green("enabled")
	}
	fmt.Printf("Service:   %s (boot: %s)\n", state, boot)

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	security := yellow("open")
	if len(cfg.Hotspot.Passphrase) >= 8 {
		security = green("WPA2")
	}
	fmt.Printf("SSID:      %s (%s)\n", cfg.Hotspot.SSID, security)
	fmt.Printf("Subnet:    %s\n", cfg.Network.Subnet)
	fmt.Printf("Upstream:  %s  Shared: %s\n", cfg.Network.UpstreamInterface, cfg.Network.SharedInterface)

	if statusVerbose {
		out, _ := mgr.GetServiceStatus(service.ServiceName)
		fmt.Println()
		fmt.Println(out)
	}
	return nil
}
