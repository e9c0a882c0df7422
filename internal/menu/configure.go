package menu

import (
	"fmt"
	"strconv"

	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/service"
)

func runConfigureMenu(mgr service.SystemdManager) error {
	for {
		cfg, err := config.LoadOrDefault()
		if err != nil {
			return err
		}

		choice, _ := tui.RunMenu(tui.MenuConfig{
			Header: buildStatusSummary(mgr),
			Title:  "Configure",
			Options: []tui.MenuOption{
				{Label: "Network Name (SSID)", Value: "ssid"},
				{Label: "Passphrase", Value: "passphrase"},
				{Label: "Channel", Value: "channel"},
				{Label: "Max Clients", Value: "max-clients"},
				{Label: "Back", Value: "back"},
			},
		})
		if choice == "" || choice == "back" {
			return errCancelled
		}

		changed, err := editConfigValue(cfg, choice)
		if err != nil {
			tui.PrintError(err.Error())
			tui.WaitForEnter()
			continue
		}
		if !changed {
			continue
		}

		if err := cfg.Validate(); err != nil {
			tui.PrintError("Invalid value: " + err.Error())
			tui.WaitForEnter()
			continue
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		tui.PrintSuccess("Configuration saved")

		if mgr.IsServiceActive(service.ServiceName) {
			restart, _ := tui.RunConfirm(tui.ConfirmConfig{
				Title: "Restart the hotspot to apply changes?",
			})
			if restart {
				if err := mgr.RestartService(service.ServiceName); err != nil {
					tui.PrintError(err.Error())
				} else {
					tui.PrintSuccess("Hotspot restarting")
				}
				tui.WaitForEnter()
			}
		}
	}
}

func editConfigValue(cfg *config.Config, key string) (bool, error) {
	switch key {
	case "ssid":
		ssid, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       "Network Name",
			Description: "1-32 printable characters",
			Placeholder: cfg.Hotspot.SSID,
		})
		if err != nil || !confirmed || ssid == "" {
			return false, nil
		}
		cfg.Hotspot.SSID = ssid
		return true, nil

	case "passphrase":
		pass, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       "Passphrase",
			Description: "8-63 characters; shorter creates an OPEN network",
		})
		if err != nil || !confirmed {
			return false, nil
		}
		if len(pass) > 0 && len(pass) < 8 {
			tui.PrintWarning("Passphrase under 8 characters: the hotspot will be OPEN")
		}
		cfg.Hotspot.Passphrase = pass
		return true, nil

	case "channel":
		val, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       "Channel",
			Description: fmt.Sprintf("1-13 (current: %d)", cfg.Hotspot.Channel),
		})
		if err != nil || !confirmed || val == "" {
			return false, nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return false, fmt.Errorf("channel must be a number")
		}
		cfg.Hotspot.Channel = n
		return true, nil

	case "max-clients":
		val, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       "Max Clients",
			Description: fmt.Sprintf("1-32 (current: %d)", cfg.Hotspot.MaxClients),
		})
		if err != nil || !confirmed || val == "" {
			return false, nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return false, fmt.Errorf("max clients must be a number")
		}
		cfg.Hotspot.MaxClients = n
		return true, nil
	}
	return false, nil
}
