package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/inventory"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the manifest whenever it changes and print stats",
	Long: `Watches the manifest file. Each time it is saved the catalog is rebuilt
from scratch and its statistics are printed. A manifest that fails to load
is reported and the previous catalog is kept. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}

	w, err := inventory.NewWatcher(a.cfg.Manifest)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.printer.Stats(a.catalog.Stats(), a.catalog.HasCircularDependencies())
	a.logger.Info("watching manifest", "path", w.Path)
	watchLoop(ctx, a, w.Changes)
	return nil
}

// watchLoop applies manifest changes until ctx is done or changes closes.
func watchLoop(ctx context.Context, a *app, changes <-chan inventory.Change) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			if change.Err != nil {
				a.logger.Error("manifest reload failed", "error", change.Err)
				a.printer.Error(change.Err.Error())
				continue
			}
			c := a.newCatalog()
			change.Manifest.Apply(c)
			a.catalog, a.manifest = c, change.Manifest
			a.logger.Info("manifest reloaded", "items", len(change.Manifest.Items))
			a.printer.Stats(c.Stats(), c.HasCircularDependencies())
		}
	}
}
