package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/dnsrelay"
	"github.com/noahclark556/hotspotd/internal/gateway"
	"github.com/noahclark556/hotspotd/internal/log"
	"github.com/noahclark556/hotspotd/internal/nat"
	"github.com/noahclark556/hotspotd/internal/wifi"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gateway daemon",
	Long: `Run the gateway in the foreground: bring the hotspot up, relay DNS,
and tear everything down on SIGINT/SIGTERM.

This is the command the systemd unit runs. Use 'hotspotd enable' to
drive the installed service instead.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := log.Configure(&cfg.Log); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	defer log.Close()

	gw, err := buildGateway(cfg)
	if err != nil {
		return err
	}

	// Enable failures are not fatal to the daemon: the upstream may come
	// up later, and the operator can retry through the CLI or menu.
	if res, err := gw.Enable(cfg.Hotspot.SSID, cfg.Hotspot.Passphrase); err != nil {
		log.Error("hotspot enable failed: %v", err)
	} else {
		log.Info("serving %s on %s", res.SSID, res.Address)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("received %s, shutting down", sig)

	return gw.Disable()
}

// buildGateway wires a gateway from the operator config plus the optional
// relay tuning file.
func buildGateway(cfg *config.Config) (*gateway.Gateway, error) {
	subnet, err := cfg.SubnetPrefix()
	if err != nil {
		return nil, err
	}
	fallback, err := cfg.FallbackDNSAddr()
	if err != nil {
		return nil, err
	}

	var relayCfg dnsrelay.Config
	if fc, err := dnsrelay.LoadFileConfig(); err != nil {
		log.Warn("ignoring relay tuning file: %v", err)
	} else if err := fc.Apply(&relayCfg); err != nil {
		log.Warn("ignoring relay tuning file: %v", err)
	}

	dev := wifi.NewLinuxDevice(cfg.Network.UpstreamInterface, cfg.Network.SharedInterface)

	return gateway.New(dev, nat.Iptables{}, gateway.Config{
		SSID:           cfg.Hotspot.SSID,
		Passphrase:     cfg.Hotspot.Passphrase,
		Channel:        cfg.Hotspot.Channel,
		MaxClients:     cfg.Hotspot.MaxClients,
		BeaconInterval: cfg.Hotspot.BeaconInterval,
		Subnet:         subnet,
		FallbackDNS:    fallback,
		Relay:          relayCfg,
	}), nil
}
