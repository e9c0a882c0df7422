package cmd

import (
	"fmt"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/noahclark556/hotspotd/internal/service"
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop the hotspot",
	RunE:  runDisable,
}

func runDisable(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr := service.DefaultManager()
	if !mgr.IsServiceInstalled(service.ServiceName) {
		return fmt.Errorf("hotspotd is not installed")
	}
	if !mgr.IsServiceActive(service.ServiceName) {
		fmt.Println("hotspot is not running")
		return nil
	}
	if err := mgr.StopService(service.ServiceName); err != nil {
		return err
	}
	fmt.Println("hotspot stopped")
	return nil
}
