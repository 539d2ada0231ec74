package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/catalog"
	"github.com/lockmeow/lockmeow/internal/config"
	"github.com/lockmeow/lockmeow/internal/inventory"
	"github.com/lockmeow/lockmeow/internal/logging"
	"github.com/lockmeow/lockmeow/internal/telemetry"
	"github.com/lockmeow/lockmeow/internal/ui"
)

// app holds everything a subcommand needs. It is built once per invocation
// in the root command's pre-run hook.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	printer  *ui.Printer
	emitter  *telemetry.Emitter
	catalog  *catalog.Catalog
	manifest *inventory.Manifest // nil when no manifest file exists
}

type appKey struct{}

// skipCatalog marks commands that only need config, logging and output.
const skipCatalog = "lockmeow/skip-catalog"

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	a := &app{
		cfg:     cfg,
		logger:  logger,
		printer: ui.New(cmd.OutOrStdout(), !noColor && useColor(cmd.OutOrStdout())),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(context.WithValue(ctx, appKey{}, a))

	if cmd.Annotations[skipCatalog] != "" {
		return nil
	}

	if cfg.EventLog != "" {
		a.emitter, err = telemetry.NewEmitter(cfg.EventLog)
		if err != nil {
			return err
		}
	}

	a.catalog = a.newCatalog()
	a.manifest, err = inventory.Load(cfg.Manifest)
	switch {
	case errors.Is(err, inventory.ErrNoManifest):
		logger.Warn("no manifest, catalog starts empty", "path", cfg.Manifest)
	case err != nil:
		a.closeEmitter()
		return err
	default:
		a.manifest.Apply(a.catalog)
	}
	return nil
}

// newCatalog builds an empty catalog wired to the app's logger and event log.
func (a *app) newCatalog() *catalog.Catalog {
	opts := []catalog.Option{
		catalog.WithLogger(a.logger),
		catalog.WithCacheCapacity(a.cfg.CacheCapacity),
	}
	if a.emitter != nil {
		opts = append(opts, catalog.WithEventSink(a.emitter))
	}
	return catalog.New(opts...)
}

func (a *app) closeEmitter() {
	if err := a.emitter.Close(); err != nil {
		a.logger.Warn("closing event log", "error", err)
	}
}

func teardownApp(cmd *cobra.Command, _ []string) error {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		a.closeEmitter()
	}
	return nil
}

func appFrom(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok {
		return nil, fmt.Errorf("%s: catalog not initialized", cmd.CommandPath())
	}
	return a, nil
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
