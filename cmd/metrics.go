package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/metrics"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print catalog metrics in Prometheus text format",
	Args:  cobra.NoArgs,
	RunE:  runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	return metrics.WriteText(cmd.OutOrStdout(), metrics.NewRegistry(a.catalog))
}
