// Package server implements the preview server: static files over the
// output directory, health and metrics endpoints, a debounced source
// watcher, and an optional periodic full rebuild.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
)

// RebuildFunc runs one build; the server calls it on changes.
type RebuildFunc func(ctx context.Context) error

// Options configures Serve.
type Options struct {
	Port      int
	OutputDir string
	Registry  *prometheus.Registry // nil disables /metrics
}

// Serve builds once, then serves the output directory while watching
// the source tree. Returns when ctx is canceled or the HTTP server
// fails.
func Serve(ctx context.Context, cfg *config.Config, opts Options, rebuild RebuildFunc) error {
	if err := rebuild(ctx); err != nil {
		// Keep serving stale output; the next change may fix the source.
		slog.Error("initial build failed", logfields.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(opts.OutputDir)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Registry != nil {
		mux.Handle("/metrics", metrics.Handler(opts.Registry))
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	watcher, err := newSourceWatcher(cfg.Source)
	if err != nil {
		return err
	}
	defer watcher.Close()

	rebuilds := make(chan struct{}, 1)
	go watcher.run(ctx, rebuilds)
	go rebuildWorker(ctx, rebuilds, rebuild)

	interval, err := cfg.RebuildIntervalDuration()
	if err != nil {
		return err
	}
	if interval > 0 {
		stop, err := startPeriodicRebuild(interval, rebuilds)
		if err != nil {
			return err
		}
		defer stop()
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", slog.Int("port", opts.Port), slog.String("dir", opts.OutputDir))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// rebuildWorker serializes rebuild requests; a request arriving during
// a build coalesces into the next one.
func rebuildWorker(ctx context.Context, rebuilds <-chan struct{}, rebuild RebuildFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuilds:
			if err := rebuild(ctx); err != nil {
				slog.Error("rebuild failed", logfields.Error(err))
			}
		}
	}
}
