package cmd

import (
	"fmt"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/noahclark556/hotspotd/internal/service"
	"github.com/spf13/cobra"
)

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View service logs",
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of log lines")
}

func runLogs(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr := service.DefaultManager()
	if !mgr.IsServiceInstalled(service.ServiceName) {
		return fmt.Errorf("hotspotd is not installed")
	}

	logs, err := mgr.GetServiceLogs(service.ServiceName, logsLines)
	if err != nil {
		return err
	}
	fmt.Println(logs)
	return nil
}
