package commands

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/sitegen/internal/build"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// ListCmd implements the 'list' command: a discovery dry run that
// resolves every document and prints where it would be published.
type ListCmd struct {
	Collection string `help:"Only list documents from this collection"`
}

func (l *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	builder, err := build.New(cfg, build.Options{OutputDir: cfg.Output.Directory})
	if err != nil {
		return err
	}
	defer builder.Close()

	cols, err := builder.Resolve()
	if err != nil {
		return logAndReturn("document resolution failed", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLLECTION\tPATH\tDATE\tURL\tPUBLISH")
	total := 0
	for _, c := range cols {
		if l.Collection != "" && c.Name != l.Collection {
			continue
		}
		for _, r := range c.Docs {
			url, err := r.URL()
			if err != nil {
				slog.Warn("url resolution failed", logfields.Path(r.Path()), logfields.Error(err))
				url = "-"
			}
			date := "-"
			if d, ok := r.Date(); ok {
				date = d.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", c.Name, r.RelativePath(), date, url, r.Writable())
			total++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d documents\n", total)
	return nil
}
