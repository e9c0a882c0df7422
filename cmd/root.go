// Package cmd provides the Cobra CLI for hotspotd.
package cmd

import (
	"os"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/menu"
	"github.com/spf13/cobra"
)

// Version and BuildTime are set at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hotspotd",
	Short: "WiFi sharing gateway",
	Long:  "hotspotd - share an upstream WiFi connection as a local hotspot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := osdetect.RequireRoot(); err != nil {
			return err
		}
		menu.Version = Version
		menu.BuildTime = BuildTime
		tui.SetAppInfo("hotspotd", Version, BuildTime)
		return menu.RunInteractive()
	},
}

func init() {
	rootCmd.Version = Version

	// Main commands (order matches menu)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(uninstallCmd)

	// Utilities
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(installCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo sets version information for the CLI.
func SetVersionInfo(version, buildTime string) {
	Version = version
	BuildTime = buildTime
	rootCmd.Version = version + " (built " + buildTime + ")"
}
