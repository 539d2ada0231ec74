package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/catalog"
	"github.com/lockmeow/lockmeow/internal/inventory"
)

func init() {
	rootCmd.AddCommand(
		newBlockCmd(catalog.ActionBlock, "Block an item and record the action"),
		newBlockCmd(catalog.ActionUnblock, "Unblock an item and record the action"),
	)
}

func newBlockCmd(kind catalog.ActionKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String() + " <item>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlock(cmd, args[0], kind == catalog.ActionBlock)
		},
	}
}

func runBlock(cmd *cobra.Command, id string, blocked bool) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	c := a.catalog

	if !c.SetBlocked(id, blocked) {
		return fmt.Errorf("%w: %s", inventory.ErrUnknownItem, id)
	}
	e, _ := c.CachedMetadata(id)
	kind := catalog.ActionUnblock
	if blocked {
		kind = catalog.ActionBlock
	}
	act := c.RecordAction(id, e.DisplayName, kind)
	a.printer.Success(act.String())
	return nil
}
