package cmd

import (
	"fmt"
	"strconv"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value and save it.

Keys: ssid, passphrase, channel, max-clients, subnet, fallback-dns,
upstream-interface, shared-interface.

Restart the service for changes to take effect.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	passphrase := "(open network)"
	if len(cfg.Hotspot.Passphrase) >= 8 {
		passphrase = "(set)"
	}

	fmt.Printf("SSID:               %s\n", cfg.Hotspot.SSID)
	fmt.Printf("Passphrase:         %s\n", passphrase)
	fmt.Printf("Channel:            %d\n", cfg.Hotspot.Channel)
	fmt.Printf("Max Clients:        %d\n", cfg.Hotspot.MaxClients)
	fmt.Printf("Subnet:             %s\n", cfg.Network.Subnet)
	fmt.Printf("Fallback DNS:       %s\n", cfg.Network.FallbackDNS)
	fmt.Printf("Upstream Interface: %s\n", cfg.Network.UpstreamInterface)
	fmt.Printf("Shared Interface:   %s\n", cfg.Network.SharedInterface)
	fmt.Printf("Config File:        %s\n", config.GetConfigPath())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "ssid":
		cfg.Hotspot.SSID = value
	case "passphrase":
		cfg.Hotspot.Passphrase = value
	case "channel":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("channel must be a number")
		}
		cfg.Hotspot.Channel = n
	case "max-clients":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max-clients must be a number")
		}
		cfg.Hotspot.MaxClients = n
	case "subnet":
		cfg.Network.Subnet = value
	case "fallback-dns":
		cfg.Network.FallbackDNS = value
	case "upstream-interface":
		cfg.Network.UpstreamInterface = value
	case "shared-interface":
		cfg.Network.SharedInterface = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Saved. Restart the service for changes to take effect.")
	return nil
}
