// Package installer sets up and removes the hotspotd service.
package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/config"
	"github.com/noahclark556/hotspotd/internal/service"
)

// requiredTools are host commands the gateway shells out to.
var requiredTools = []string{"ip", "iw", "iptables", "sysctl", "systemctl", "hostapd", "dnsmasq"}

// CheckHostTools reports the missing host commands, if any.
func CheckHostTools() []string {
	var missing []string
	for _, tool := range requiredTools {
		if !toolInPath(tool) {
			missing = append(missing, tool)
		}
	}
	return missing
}

// Install copies the running binary into place, writes the initial
// configuration, and installs and starts the systemd unit.
func Install(cfg *config.Config, mgr service.SystemdManager) error {
	totalSteps := 4
	step := 1

	tui.PrintStep(step, totalSteps, "Installing binary...")
	if err := installBinary(); err != nil {
		return fmt.Errorf("failed to install binary: %w", err)
	}
	tui.PrintStatus("Binary installed to " + service.BinaryPath)
	step++

	tui.PrintStep(step, totalSteps, "Saving configuration...")
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	tui.PrintStatus("Configuration saved to " + config.GetConfigPath())
	step++

	tui.PrintStep(step, totalSteps, "Creating systemd service...")
	if err := mgr.CreateService(service.ServiceName, service.HotspotServiceConfig()); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	if err := mgr.EnableService(service.ServiceName); err != nil {
		tui.PrintWarning("Could not enable service at boot: " + err.Error())
	}
	tui.PrintStatus("Service created")
	step++

	tui.PrintStep(step, totalSteps, "Starting service...")
	if err := mgr.StartService(service.ServiceName); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	tui.PrintStatus("Service started")

	return nil
}

// Uninstall stops and removes the service. Configuration is removed only
// when purge is set; the binary is kept for easy reinstallation.
func Uninstall(mgr service.SystemdManager, purge bool) error {
	if mgr.IsServiceInstalled(service.ServiceName) {
		if err := mgr.RemoveService(service.ServiceName); err != nil {
			return fmt.Errorf("failed to remove service: %w", err)
		}
		tui.PrintStatus("Service removed")
	}

	if purge {
		if err := os.RemoveAll(config.ConfigDir); err != nil {
			return fmt.Errorf("failed to remove configuration: %w", err)
		}
		tui.PrintStatus("Configuration removed")
	}

	return nil
}

// installBinary copies the currently running executable to BinaryPath.
func installBinary() error {
	self, err := os.Executable()
	if err != nil {
		return err
	}
	if self == service.BinaryPath {
		return nil
	}

	src, err := os.Open(self)
	if err != nil {
		return err
	}
	defer src.Close()

	tmp := service.BinaryPath + ".tmp"
	dst, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmp)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, service.BinaryPath)
}

func toolInPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
