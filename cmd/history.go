package cmd

import "github.com/spf13/cobra"

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show, undo or clear recorded actions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("undo", 0, "undo the last N actions before listing")
	historyCmd.Flags().Bool("clear", false, "drop every recorded action")
	historyCmd.MarkFlagsMutuallyExclusive("undo", "clear")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	c := a.catalog

	if drop, _ := cmd.Flags().GetBool("clear"); drop {
		c.ClearHistory()
		a.printer.Success("history cleared")
		return nil
	}

	undo, _ := cmd.Flags().GetInt("undo")
	for i := 0; i < undo; i++ {
		act, err := c.UndoLastAction()
		if err != nil {
			return err
		}
		a.printer.Undone(act)
	}

	a.printer.History(c.ActionHistory())
	return nil
}
