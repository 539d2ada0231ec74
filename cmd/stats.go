package cmd

import "github.com/spf13/cobra"

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog container sizes",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	a.printer.Stats(a.catalog.Stats(), a.catalog.HasCircularDependencies())
	return nil
}
