package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	printlabel "github.com/goliatone/go-printlabel"
	"github.com/goliatone/go-printlabel/internal/config"
	"github.com/goliatone/go-printlabel/internal/logger"
	"github.com/goliatone/go-printlabel/internal/prompt"
	"github.com/goliatone/go-printlabel/pkg/orchestrator"
	"github.com/goliatone/go-printlabel/pkg/records"
	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, prompt.NewSurveyDriver(os.Stderr)); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("printlabel: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, driver prompt.Driver) error {
	fs := flag.NewFlagSet("printlabel", flag.ContinueOnError)
	format := fs.String("format", "", "label format: a4, a5, v1, v2, v3 or i4 (default from config or print template)")
	input := fs.String("input", "", "records file (.yaml, .yml or .json)")
	output := fs.String("output", "", "output file (stdout if empty)")
	interactive := fs.Bool("interactive", false, "collect labels through terminal prompts")
	locale := fs.String("locale", "", "print date locale, e.g. vi, en-US, ja")
	configFile := fs.String("config", "", "configuration file (default conf/printlabel.yaml)")
	verbose := fs.Bool("v", false, "log to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *input == "" && !*interactive {
		fs.Usage()
		return errors.New("either -input or -interactive is required")
	}

	var loadOpts []config.Option
	if *configFile != "" {
		loadOpts = append(loadOpts, config.WithFile(*configFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return err
	}

	logOut, err := logger.New(logger.Options{Level: cfg.Log.Level, Console: *verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Sync() }()

	engine, err := newEngine(cfg, *locale, logOut)
	if err != nil {
		return err
	}

	var reqs []orchestrator.Request
	if *interactive {
		reqs, err = collect(ctx, driver, format)
	} else {
		reqs, err = load(*input)
	}
	if err != nil {
		return err
	}

	html, err := engine.GenerateBatch(ctx, *format, reqs)
	if err != nil {
		return err
	}
	logOut.Info("labels rendered", zap.Int("items", len(reqs)), zap.String("format", *format))

	if *output == "" {
		_, err = fmt.Fprintln(stdout, html)
		return err
	}
	if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%d label(s) written to %s\n", len(reqs), *output)
	return nil
}

func newEngine(cfg *config.Config, locale string, logOut *zap.Logger) (*orchestrator.Orchestrator, error) {
	if strings.TrimSpace(locale) == "" {
		locale = cfg.Render.Locale
	}
	labelOpts := []labels.Option{labels.WithLogger(logOut)}
	if cfg.Render.TemplatesDir != "" {
		labelOpts = append(labelOpts, labels.WithTemplatesDir(cfg.Render.TemplatesDir))
	}
	if th := cfg.Theme.RendererConfig(); th != nil {
		labelOpts = append(labelOpts, labels.WithTheme(th))
	}
	registry, err := labels.Registry(labelOpts...)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultFormat(cfg.Render.DefaultFormat),
		orchestrator.WithDefaultLocale(locale),
		orchestrator.WithLogger(logOut),
	), nil
}

func load(path string) ([]orchestrator.Request, error) {
	batch, err := records.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return printlabel.Requests(batch), nil
}

func collect(ctx context.Context, driver prompt.Driver, format *string) ([]orchestrator.Request, error) {
	collected, err := prompt.NewCollector(driver).CollectAll(ctx)
	if err != nil {
		return nil, err
	}
	if *format == "" && len(collected) > 0 {
		*format = string(collected[0].Format)
	}
	reqs := make([]orchestrator.Request, len(collected))
	for i := range collected {
		l := collected[i]
		reqs[i] = orchestrator.Request{Selection: &l.Selection, Template: &l.Template}
	}
	return reqs, nil
}
