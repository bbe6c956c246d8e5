package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/csv-reporter/pkg/services/report"

	"github.com/spf13/cobra"
)

type ReportsCmd struct {
	registry report.Registry
}

func NewReportsCmd(registry report.Registry) *cobra.Command {
	rc := &ReportsCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List available report names",
		RunE:  rc.run,
	}

	return cmd
}

func (rc *ReportsCmd) run(cmd *cobra.Command, args []string) error {
	names := rc.registry.Names()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No reports registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Available reports:\n%s\n", strings.Join(names, "\n"))
	return nil
}
