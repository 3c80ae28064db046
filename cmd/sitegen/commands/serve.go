package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/build"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/hooks"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/server"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Output      string `short:"o" help:"Output directory for the generated site" default:"./site"`
	Port        int    `short:"p" help:"Preview server port (overrides config)" default:"0"`
	Incremental bool   `short:"i" help:"Skip unchanged documents on rebuilds"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	port := cfg.Preview.Port
	if s.Port != 0 {
		port = s.Port
	}
	outputDir := ResolveOutputDir(s.Output, cfg)

	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)

	bus := hooks.NewBus()
	closeHooks, err := attachHooks(cfg, bus)
	if err != nil {
		return logAndReturn("hook setup failed", err)
	}
	defer closeHooks()

	builder, err := build.New(cfg, build.Options{
		OutputDir:   outputDir,
		Incremental: s.Incremental,
		Recorder:    recorder,
		Bus:         bus,
	})
	if err != nil {
		return logAndReturn("builder setup failed", err)
	}
	defer builder.Close()

	rebuild := func(ctx context.Context) error {
		_, err := builder.Run(ctx)
		return err
	}

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return server.Serve(sigctx, cfg, server.Options{
		Port:      port,
		OutputDir: outputDir,
		Registry:  registry,
	}, rebuild)
}
