package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/hooks"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the site from the content directory"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	List  ListCmd  `cmd:"" help:"List discovered documents and their resolved URLs without building"`
	Serve ServeCmd `cmd:"" help:"Serve the site locally and rebuild on content changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the log level from the verbose flag and the
// SITEGEN_LOG_LEVEL environment variable. The env var wins so operators
// can raise or lower verbosity without changing invocations.
func parseLogLevel(verbose bool) slog.Level {
	switch strings.ToLower(os.Getenv("SITEGEN_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// ResolveOutputDir determines the final output directory.
// Priority: CLI flag > configured directory > CLI default.
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" && cliOutput != "./site" {
		return cliOutput
	}
	if cfg.Output.Directory != "" {
		return cfg.Output.Directory
	}
	return cliOutput
}

// attachHooks wires the optional NATS event mirror onto the bus. The
// returned closer is safe to call even when hooks are disabled.
func attachHooks(cfg *config.Config, bus *hooks.Bus) (func(), error) {
	if !cfg.Hooks.NATS.Enabled {
		return func() {}, nil
	}
	pub, err := hooks.NewNATSPublisher(cfg.Hooks.NATS)
	if err != nil {
		return nil, err
	}
	pub.Attach(bus)
	slog.Info("NATS hook publisher attached", slog.String("subject", cfg.Hooks.NATS.Subject))
	return pub.Close, nil
}

// logAndReturn keeps command error handling uniform.
func logAndReturn(msg string, err error) error {
	slog.Error(msg, logfields.Error(err))
	return err
}
