// cmd/printlabel-server/main.go
//
// Label render service entry point.
//
// Start-up
// --------
//
//  1. Load configuration (.env, conf/printlabel.yaml, PRINTLABEL_ env).
//  2. Start the daily rotating logger (tees to the console on a TTY).
//  3. Build the label registry with the configured templates and theme.
//  4. Serve render, formats, assets, health and /metrics routes.
//  5. Shut down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	printlabel "github.com/goliatone/go-printlabel"
	"github.com/goliatone/go-printlabel/internal/config"
	"github.com/goliatone/go-printlabel/internal/logger"
	"github.com/goliatone/go-printlabel/internal/metrics"
	"github.com/goliatone/go-printlabel/internal/server"
	"github.com/goliatone/go-printlabel/pkg/orchestrator"
	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

func main() {
	configFile := flag.String("config", "", "configuration file (default conf/printlabel.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFile); err != nil {
		log.Fatalf("printlabel-server: %v", err)
	}
}

func run(ctx context.Context, configFile string) error {
	var loadOpts []config.Option
	if configFile != "" {
		loadOpts = append(loadOpts, config.WithFile(configFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return err
	}

	logDir := cfg.Log.Dir
	if logDir != "" && !filepath.IsAbs(logDir) {
		logDir = filepath.Join(cfg.Paths.Root, logDir)
	}
	logOut, err := logger.New(logger.Options{
		Dir:     logDir,
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console && logger.RunningInTTY(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Sync() }()

	labelOpts := []labels.Option{labels.WithLogger(logOut)}
	if cfg.Render.TemplatesDir != "" {
		labelOpts = append(labelOpts, labels.WithTemplatesDir(cfg.Render.TemplatesDir))
	}
	if th := cfg.Theme.RendererConfig(); th != nil {
		labelOpts = append(labelOpts, labels.WithTheme(th))
	}
	registry, err := labels.Registry(labelOpts...)
	if err != nil {
		return err
	}

	engine := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultFormat(cfg.Render.DefaultFormat),
		orchestrator.WithDefaultLocale(cfg.Render.Locale),
		orchestrator.WithLogger(logOut),
		orchestrator.WithObserver(metrics.Observer{}),
	)

	var assets fs.FS = printlabel.BackgroundAssetsFS()
	if cfg.Render.AssetsDir != "" {
		assets = os.DirFS(cfg.Render.AssetsDir)
	}

	srv, err := server.New(ctx,
		server.WithOrchestrator(engine),
		server.WithAssets(assets),
		server.WithLogger(logOut),
		server.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes),
		server.WithMaxBatchItems(cfg.HTTP.MaxBatchItems),
	)
	if err != nil {
		return err
	}

	httpServer := server.NewHTTPServer(cfg.HTTP.ListenAddr, srv.Routes())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Info("listening", zap.String("addr", cfg.HTTP.ListenAddr), zap.Strings("formats", registry.List()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logOut.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Error("server stopped with error", zap.Error(err))
		return err
	}
	logOut.Info("shutdown completed")
	return nil
}
