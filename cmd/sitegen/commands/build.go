package commands

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/build"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/hooks"
)

const summaryRound = time.Millisecond

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory for the generated site" default:"./site"`
	Incremental bool   `short:"i" help:"Skip unchanged documents using the build state store"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	outputDir := ResolveOutputDir(b.Output, cfg)

	bus := hooks.NewBus()
	closeHooks, err := attachHooks(cfg, bus)
	if err != nil {
		return logAndReturn("hook setup failed", err)
	}
	defer closeHooks()

	builder, err := build.New(cfg, build.Options{
		OutputDir:   outputDir,
		Incremental: b.Incremental,
		Bus:         bus,
	})
	if err != nil {
		return logAndReturn("builder setup failed", err)
	}
	defer builder.Close()

	summary, err := builder.Run(context.Background())
	if err != nil {
		return logAndReturn("build failed", err)
	}

	fmt.Printf("Build completed: %d documents, %d written, %d skipped in %s\n",
		summary.Documents, summary.Written, summary.Skipped, summary.Duration.Round(summaryRound))
	return nil
}
