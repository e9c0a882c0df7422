// Package menu provides the interactive menu for hotspotd.
package menu

import (
	"errors"
	"fmt"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/service"
)

// errCancelled is returned when user cancels/backs out.
var errCancelled = errors.New("cancelled")

// Version and BuildTime are set by cmd package.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const hotspotdBanner = `
    __          __                   __      __
   / /_  ____  / /_______  ____  __/ /_____/ /
  / __ \/ __ \/ __/ ___/ |/_/ / / / __/ __  /
 / / / / /_/ / /_(__  )>  </ /_/ / /_/ /_/ /
/_/ /_/\____/\__/____/_/|_|\____/\__/\____/
`

// PrintBanner displays the hotspotd banner with version info.
func PrintBanner() {
	tui.PrintBanner(tui.BannerConfig{
		AppName:   "WiFi Sharing Gateway",
		Version:   Version,
		BuildTime: BuildTime,
		ASCII:     hotspotdBanner,
	})
}

// RunInteractive shows the main interactive menu.
func RunInteractive() error {
	PrintBanner()

	osInfo, err := osdetect.Detect()
	if err != nil {
		tui.PrintWarning("Could not detect OS: " + err.Error())
	} else {
		tui.PrintInfo(fmt.Sprintf("Detected OS: %s", osInfo.PrettyName))
	}
	tui.PrintInfo(fmt.Sprintf("Architecture: %s", osdetect.GetArch()))

	return runMainMenu()
}

// buildStatusSummary builds a summary string for the main menu header.
func buildStatusSummary(mgr service.SystemdManager) string {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return ""
	}

	state := "stopped"
	if mgr.IsServiceActive(service.ServiceName) {
		state = "running"
	}
	security := "open"
	if len(cfg.Hotspot.Passphrase) >= 8 {
		security = "WPA2"
	}
	return fmt.Sprintf("Service: %s | SSID: %s (%s)", state, cfg.Hotspot.SSID, security)
}

func runMainMenu() error {
	mgr := service.DefaultManager()

	firstRun := true
	for {
		if !firstRun {
			tui.ClearScreen()
			PrintBanner()
		}
		firstRun = false

		fmt.Println()

		installed := mgr.IsServiceInstalled(service.ServiceName)

		var options []tui.MenuOption
		var header string

		if !installed {
			tui.PrintWarning("hotspotd not installed")
			options = append(options, tui.MenuOption{Label: "Install (Required)", Value: "install"})
			options = append(options, tui.MenuOption{Label: "Exit", Value: "exit"})
		} else {
			header = buildStatusSummary(mgr)

			if mgr.IsServiceActive(service.ServiceName) {
				options = append(options, tui.MenuOption{Label: "Stop Hotspot", Value: "stop"})
				options = append(options, tui.MenuOption{Label: "Restart Hotspot", Value: "restart"})
			} else {
				options = append(options, tui.MenuOption{Label: "Start Hotspot", Value: "start"})
			}
			options = append(options, tui.MenuOption{Label: "Status", Value: "status"})
			options = append(options, tui.MenuOption{Label: "Configure →", Value: "configure"})
			options = append(options, tui.MenuOption{Label: "Logs", Value: "logs"})
			options = append(options, tui.MenuOption{Label: "Uninstall", Value: "uninstall"})
			options = append(options, tui.MenuOption{Label: "Exit", Value: "exit"})
		}

		choice, _ := tui.RunMenu(tui.MenuConfig{
			Header:  header,
			Title:   "WiFi Sharing Gateway",
			Options: options,
		})

		if choice == "" || choice == "exit" {
			tui.PrintInfo("Goodbye!")
			return nil
		}

		err := handleMainMenuChoice(mgr, choice)
		if errors.Is(err, errCancelled) {
			continue
		}
		if err != nil {
			tui.PrintError(err.Error())
			tui.WaitForEnter()
		}
	}
}

func handleMainMenuChoice(mgr service.SystemdManager, choice string) error {
	switch choice {
	case "start":
		if err := mgr.StartService(service.ServiceName); err != nil {
			return err
		}
		tui.PrintSuccess("Hotspot starting")
		tui.WaitForEnter()
	case "stop":
		if err := mgr.StopService(service.ServiceName); err != nil {
			return err
		}
		tui.PrintSuccess("Hotspot stopped")
		tui.WaitForEnter()
	case "restart":
		if err := mgr.RestartService(service.ServiceName); err != nil {
			return err
		}
		tui.PrintSuccess("Hotspot restarting")
		tui.WaitForEnter()
	case "status":
		return showStatus(mgr)
	case "configure":
		return runConfigureMenu(mgr)
	case "logs":
		return showLogs(mgr)
	case "install":
		return runInstall(mgr)
	case "uninstall":
		return runUninstall(mgr)
	}
	return nil
}

func showStatus(mgr service.SystemdManager) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	state := "stopped"
	if mgr.IsServiceActive(service.ServiceName) {
		state = "running"
	}
	boot := "disabled"
	if mgr.IsServiceEnabled(service.ServiceName) {
		boot = "enabled"
	}
	security := "open"
	if len(cfg.Hotspot.Passphrase) >= 8 {
		security = "WPA2"
	}

	tui.PrintBox("Hotspot Status", []string{
		tui.KV("Service:   ", state),
		tui.KV("At boot:   ", boot),
		tui.KV("SSID:      ", cfg.Hotspot.SSID),
		tui.KV("Security:  ", security),
		tui.KV("Subnet:    ", cfg.Network.Subnet),
		tui.KV("Upstream:  ", cfg.Network.UpstreamInterface),
		tui.KV("Shared:    ", cfg.Network.SharedInterface),
	})
	tui.WaitForEnter()
	return nil
}

func showLogs(mgr service.SystemdManager) error {
	logs, err := mgr.GetServiceLogs(service.ServiceName, 50)
	if err != nil {
		return err
	}
	fmt.Println(logs)
	tui.WaitForEnter()
	return nil
}
