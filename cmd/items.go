package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/catalog"
	"github.com/lockmeow/lockmeow/internal/ui"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List indexed items in sorted order",
	Args:  cobra.NoArgs,
	RunE:  runItems,
}

func init() {
	itemsCmd.Flags().Bool("blocked", false, "only list blocked items")
	rootCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	onlyBlocked, _ := cmd.Flags().GetBool("blocked")
	a.printer.Items(itemRows(a.catalog, onlyBlocked))
	return nil
}

// itemRows joins the sorted index with cached metadata.
func itemRows(c *catalog.Catalog, onlyBlocked bool) []ui.ItemRow {
	var rows []ui.ItemRow
	for _, id := range c.SortedItems() {
		e, ok := c.CachedMetadata(id)
		if onlyBlocked && !e.Blocked {
			continue
		}
		rows = append(rows, ui.ItemRow{
			ID:      id,
			Name:    e.DisplayName,
			Blocked: e.Blocked,
			Usage:   e.UsageTime,
			Cached:  ok,
		})
	}
	return rows
}
