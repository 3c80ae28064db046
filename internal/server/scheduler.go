package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// startPeriodicRebuild schedules a full rebuild every interval. It
// guards against missed filesystem events (network mounts, editors
// that bypass rename notifications). Returns a stop function.
func startPeriodicRebuild(interval time.Duration, rebuilds chan<- struct{}) (func(), error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			select {
			case rebuilds <- struct{}{}:
			default:
			}
		}),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("failed to create periodic rebuild job: %w", err)
	}

	scheduler.Start()
	slog.Info("Periodic rebuild scheduled", slog.Duration("interval", interval))

	return func() {
		if err := scheduler.Shutdown(); err != nil {
			slog.Warn("scheduler shutdown failed", "error", err)
		}
	}, nil
}
