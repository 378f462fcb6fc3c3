package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/newthinker/boxoffice/internal/api"
	"github.com/newthinker/boxoffice/internal/app"
	"github.com/newthinker/boxoffice/internal/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, "")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	if cfgFile == "" {
		log.Warn("no config file specified, using defaults")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
	}

	application, err := app.New(cfg, log, app.WithMetrics(reg))
	if err != nil {
		return fmt.Errorf("creating app: %w", err)
	}

	// A dataset that cannot be loaded is fatal at startup
	if err := application.Load(ctx); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	server, err := api.NewServer(api.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		TemplatesDir: cfg.Server.TemplatesDir,
		MetricsPath:  metricsPath,
	}, api.Dependencies{App: application, Metrics: reg}, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	log.Info("starting boxoffice server",
		zap.String("addr", server.Addr()),
		zap.String("dataset", cfg.Dataset.Path),
		zap.String("source", cfg.Dataset.Source),
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start()
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	log.Info("server exited")
	return nil
}
