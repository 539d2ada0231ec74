package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/inventory"
)

var depsCmd = &cobra.Command{
	Use:   "deps [item]",
	Short: "Show the dependency graph or one item's dependents",
	Long: `Without an argument, reports the size of the dependency graph and whether
it contains a cycle. With an item, prints everything that depends on it,
directly or transitively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().Bool("flat", false, "print dependents in breadth-first order instead of as a tree")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	c := a.catalog

	if len(args) == 0 {
		s := c.Stats()
		msg := fmt.Sprintf("%d item(s), %d dependenc(ies)", s.Vertices, s.Edges)
		if c.HasCircularDependencies() {
			a.printer.Error(msg + ", circular dependencies found")
			return nil
		}
		a.printer.Success(msg + ", no cycles")
		return nil
	}

	id := args[0]
	related := c.RelatedItems(id)
	if len(related) == 0 {
		return fmt.Errorf("%w: %s", inventory.ErrUnknownItem, id)
	}
	if flat, _ := cmd.Flags().GetBool("flat"); flat {
		a.printer.List(related[1:], "(no dependents)")
		return nil
	}
	a.printer.DependencyTree(id, c.Dependents)
	return nil
}
