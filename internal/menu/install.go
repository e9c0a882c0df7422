package menu

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/installer"
	"github.com/noahclark556/hotspotd/internal/service"
)

func runInstall(mgr service.SystemdManager) error {
	if missing := installer.CheckHostTools(); len(missing) > 0 {
		tui.PrintError(fmt.Sprintf("Missing required host tools: %v", missing))
		tui.WaitForEnter()
		return errCancelled
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	ssid := cfg.Hotspot.SSID
	if err := huh.NewInput().
		Title("Network Name (SSID)").
		Description("1-32 printable characters").
		Value(&ssid).
		Run(); err != nil {
		return errCancelled
	}
	if ssid != "" {
		cfg.Hotspot.SSID = ssid
	}

	passphrase := cfg.Hotspot.Passphrase
	if err := huh.NewInput().
		Title("Passphrase").
		Description("8-63 characters; leave short or empty for an open network").
		Value(&passphrase).
		Run(); err != nil {
		return errCancelled
	}
	cfg.Hotspot.Passphrase = passphrase

	if err := cfg.Validate(); err != nil {
		tui.PrintError("Invalid configuration: " + err.Error())
		tui.WaitForEnter()
		return errCancelled
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

	confirm, err := tui.RunConfirm(tui.ConfirmConfig{Title: "Proceed with installation?"})
	if err != nil || !confirm {
		tui.PrintInfo("Cancelled")
		return errCancelled
	}

	if err := installer.Install(cfg, mgr); err != nil {
		return err
	}

	tui.PrintSuccess("hotspotd installed")
	tui.WaitForEnter()
	return nil
}

func runUninstall(mgr service.SystemdManager) error {
	confirm, err := tui.RunConfirm(tui.ConfirmConfig{Title: "Remove the hotspotd service?"})
	if err != nil || !confirm {
		tui.PrintInfo("Cancelled")
		return errCancelled
	}

	purge, _ := tui.RunConfirm(tui.ConfirmConfig{Title: "Also remove configuration?"})

	if err := installer.Uninstall(mgr, purge); err != nil {
		return err
	}
	tui.PrintSuccess("hotspotd uninstalled")
	tui.WaitForEnter()
	return nil
}
