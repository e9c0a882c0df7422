package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/noahclark556/hotspotd/internal/config"
)

const (
	// ServiceName is the unit the daemon runs under.
	ServiceName = "hotspotd"

	// BinaryPath is where the installer places the binary.
	BinaryPath = "/usr/local/bin/hotspotd"

	unitDir = "/etc/systemd/system"
)

// HotspotServiceConfig is the unit hotspotd installs for itself. The
// daemon needs CAP_NET_ADMIN for interface and translation management
// and CAP_NET_BIND_SERVICE for the DNS relay on port 53.
func HotspotServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:        ServiceName,
		Description: "hotspotd WiFi sharing gateway",
		ExecStart:   BinaryPath + " serve",
		User:        "root",
		Capabilities: []string{
			"CAP_NET_ADMIN",
			"CAP_NET_BIND_SERVICE",
			"CAP_NET_RAW",
		},
		WritablePaths: []string{
			config.ConfigDir,
			"/etc/hostapd",
			"/etc/dnsmasq.d",
		},
	}
}

// renderUnit produces the unit file body for a ServiceConfig.
func renderUnit(cfg ServiceConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, `[Unit]
Description=%s
After=network.target
Wants=network-online.target

[Service]
Type=simple
ExecStart=%s
Restart=always
RestartSec=5
StandardOutput=journal
StandardError=journal
`, cfg.Description, cfg.ExecStart)

	if cfg.User != "" {
		fmt.Fprintf(&b, "User=%s\n", cfg.User)
	}
	if cfg.Group != "" {
		fmt.Fprintf(&b, "Group=%s\n", cfg.Group)
	}

	b.WriteString(`
# Security hardening
NoNewPrivileges=yes
ProtectSystem=strict
ProtectHome=yes
PrivateTmp=yes
ProtectControlGroups=yes
RestrictRealtime=yes
RestrictSUIDSGID=yes
LockPersonality=yes
`)

	if len(cfg.Capabilities) > 0 {
		caps := strings.Join(cfg.Capabilities, " ")
		fmt.Fprintf(&b, "\nAmbientCapabilities=%s\nCapabilityBoundingSet=%s\n", caps, caps)
	}
	for _, p := range cfg.WritablePaths {
		fmt.Fprintf(&b, "ReadWritePaths=%s\n", p)
	}

	b.WriteString(`
[Install]
WantedBy=multi-user.target
`)
	return b.String()
}

// unitPath returns the unit file path for a service name.
func unitPath(name string) string {
	return filepath.Join(unitDir, name+".service")
}

// RealSystemdManager drives the host's systemd through systemctl and
// journalctl.
type RealSystemdManager struct{}

// NewRealSystemdManager returns a manager backed by the host systemd.
func NewRealSystemdManager() *RealSystemdManager {
	return &RealSystemdManager{}
}

var _ SystemdManager = (*RealSystemdManager)(nil)

func (r *RealSystemdManager) CreateService(name string, cfg ServiceConfig) error {
	cfg.Name = name
	if err := os.WriteFile(unitPath(name), []byte(renderUnit(cfg)), 0644); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}
	return r.DaemonReload()
}

func (r *RealSystemdManager) RemoveService(name string) error {
	r.StopService(name)
	r.DisableService(name)
	if err := os.Remove(unitPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove service file: %w", err)
	}
	return r.DaemonReload()
}

func (r *RealSystemdManager) StartService(name string) error {
	return systemctl("start", name)
}

func (r *RealSystemdManager) StopService(name string) error {
	return systemctl("stop", name)
}

func (r *RealSystemdManager) RestartService(name string) error {
	return systemctl("restart", name)
}

func (r *RealSystemdManager) EnableService(name string) error {
	return systemctl("enable", name)
}

func (r *RealSystemdManager) DisableService(name string) error {
	return systemctl("disable", name)
}

func (r *RealSystemdManager) IsServiceActive(name string) bool {
	output, _ := exec.Command("systemctl", "is-active", name).Output()
	return strings.TrimSpace(string(output)) == "active"
}

func (r *RealSystemdManager) IsServiceEnabled(name string) bool {
	output, _ := exec.Command("systemctl", "is-enabled", name).Output()
	return strings.TrimSpace(string(output)) == "enabled"
}

func (r *RealSystemdManager) IsServiceInstalled(name string) bool {
	_, err := os.Stat(unitPath(name))
	return err == nil
}

func (r *RealSystemdManager) GetServiceStatus(name string) (string, error) {
	output, err := exec.Command("systemctl", "status", name, "--no-pager", "-l").CombinedOutput()
	return string(output), err
}

func (r *RealSystemdManager) GetServiceLogs(name string, lines int) (string, error) {
	output, err := exec.Command("journalctl", "-u", name, "-n", strconv.Itoa(lines), "--no-pager").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get logs: %w", err)
	}
	return string(output), nil
}

func (r *RealSystemdManager) DaemonReload() error {
	return systemctl("daemon-reload")
}

func systemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("systemctl %s failed: %s: %w", strings.Join(args, " "), string(output), err)
	}
	return nil
}
