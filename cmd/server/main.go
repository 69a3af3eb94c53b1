package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"povdash/internal/api"
	"povdash/internal/config"
	"povdash/internal/dashboard"
	"povdash/internal/engine"
	"povdash/internal/logging"
)

var logger = logging.New("server")

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "povdash",
		Short: "Serve the Poverty And Equity Database dashboard",
		Long: `Serve the World Bank poverty dashboard over HTTP.

Both CSV files are read once at startup; the server does not listen until
they are loaded.

Example: povdash --data-dir ./data --preset combined --port 8501`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	cfg.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	preset, lvl, err := cfg.Validate()
	if err != nil {
		return err
	}
	logging.SetLevel(lvl)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load the data. Nothing is served until this succeeds.
	logger.Infof("loading data from %s (preset %s)", cfg.Data.Dir, preset)
	t0 := time.Now()
	ds, err := engine.Load(ctx, cfg.Sources(preset))
	if err != nil {
		return err
	}
	defer ds.Release()
	logger.Infof("data loaded in %v", time.Since(t0))

	// 2. Assemble the page and its callbacks.
	app, err := dashboard.NewApp(ds, preset)
	if err != nil {
		return err
	}

	// 3. Serve until interrupted.
	e := api.NewServer(app, logging.New("echo"))
	errc := make(chan error, 1)
	go func() {
		logger.Infof("server ready on %s", cfg.Address())
		errc <- e.Start(cfg.Address())
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
