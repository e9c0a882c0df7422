package cmd

import (
	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/noahclark556/hotspotd/internal/installer"
	"github.com/noahclark556/hotspotd/internal/service"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the hotspotd service",
	Long: `Stop and remove the systemd service. Configuration in /etc/hotspotd
is removed with --purge; the binary is kept for easy reinstallation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := osdetect.RequireRoot(); err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		purge, _ := cmd.Flags().GetBool("purge")

		if !force {
			confirm, err := tui.RunConfirm(tui.ConfirmConfig{
				Title: "Remove the hotspotd service?",
			})
			if err != nil {
				return err
			}
			if !confirm {
				tui.PrintInfo("Cancelled")
				return nil
			}
		}

		if err := installer.Uninstall(service.DefaultManager(), purge); err != nil {
			return err
		}
		tui.PrintSuccess("hotspotd uninstalled")
		return nil
	},
}

func init() {
	uninstallCmd.Flags().Bool("force", false, "skip confirmation")
	uninstallCmd.Flags().Bool("purge", false, "also remove configuration")
}
