package cmd

import (
	"slices"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show metadata cache occupancy",
	Args:  cobra.NoArgs,
	RunE:  runCache,
}

func init() {
	cacheCmd.Flags().Bool("keys", false, "also list cached item IDs")
	rootCmd.AddCommand(cacheCmd)
}

func runCache(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	a.printer.CacheStats(a.catalog.CacheStats())

	if keys, _ := cmd.Flags().GetBool("keys"); keys {
		ids := a.catalog.CachedKeys()
		slices.Sort(ids)
		a.printer.List(ids, "(cache empty)")
	}
	return nil
}
