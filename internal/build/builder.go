// Package build orchestrates a full site build: discover collections,
// resolve documents concurrently, render, and write output.
package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitegen/internal/collection"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/defaults"
	"git.home.luguber.info/inful/sitegen/internal/document"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/frontmatterops"
	"git.home.luguber.info/inful/sitegen/internal/gitmeta"
	"git.home.luguber.info/inful/sitegen/internal/hooks"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/renderer"
	"git.home.luguber.info/inful/sitegen/internal/state"
)

// Options configures one Builder.
type Options struct {
	OutputDir   string
	Incremental bool
	Recorder    metrics.Recorder // nil means NoopRecorder
	Bus         *hooks.Bus       // nil means a private bus with no subscribers
}

// Summary reports what a build run did.
type Summary struct {
	Documents int
	Written   int
	Skipped   int
	Errors    int
	Duration  time.Duration
}

// Builder runs builds. Safe to reuse across runs (the serve command
// rebuilds with the same Builder).
type Builder struct {
	cfg      *config.Config
	opts     Options
	cascade  *defaults.Cascade
	renderer *renderer.Renderer
	resolver *document.FilenameResolver
	recorder metrics.Recorder
	bus      *hooks.Bus
	store    *state.Store
	git      *gitmeta.Resolver
}

// New creates a Builder. The state store is opened only for incremental
// builds; git metadata resolution degrades silently when the source
// tree is not a git work tree.
func New(cfg *config.Config, opts Options) (*Builder, error) {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Bus == nil {
		opts.Bus = hooks.NewBus()
	}

	b := &Builder{
		cfg:      cfg,
		opts:     opts,
		cascade:  defaults.NewCascade(cfg.Defaults),
		renderer: renderer.New(cfg.Site.Title),
		resolver: document.NewFilenameResolver(cfg.Site.Time.Location()),
		recorder: opts.Recorder,
		bus:      opts.Bus,
	}

	if opts.Incremental {
		statePath := cfg.Build.StateFile
		if statePath == "" {
			statePath = filepath.Join(opts.OutputDir, ".sitegen-state.db")
		}
		if err := os.MkdirAll(filepath.Dir(statePath), 0o755); err != nil {
			return nil, sgerrors.StoreFailed("create state dir", err)
		}
		store, err := state.NewStore(statePath)
		if err != nil {
			return nil, sgerrors.StoreFailed("open", err)
		}
		b.store = store
	}

	if cfg.Build.GitMetadata {
		git, err := gitmeta.Open(cfg.Source)
		if err != nil {
			slog.Debug("git metadata unavailable", logfields.Path(cfg.Source), logfields.Error(err))
		} else {
			b.git = git
		}
	}

	return b, nil
}

// Close releases builder resources.
func (b *Builder) Close() {
	if b.store != nil {
		_ = b.store.Close()
	}
}

// Run executes one build.
func (b *Builder) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	buildID := uuid.NewString()

	sourceAbs, err := filepath.Abs(b.cfg.Source)
	if err != nil {
		return Summary{}, err
	}

	slog.Info("Starting site build",
		logfields.BuildID(buildID),
		logfields.Path(sourceAbs),
		slog.String("output", b.opts.OutputDir),
		slog.Bool("incremental", b.opts.Incremental))

	_ = b.bus.Publish(hooks.BuildStarted{BuildID: buildID, Source: sourceAbs, Time: start})

	if b.cfg.Output.Clean && !b.opts.Incremental {
		if err := cleanOutputDir(b.opts.OutputDir); err != nil {
			return Summary{}, sgerrors.WriteFailed(b.opts.OutputDir, err)
		}
	}

	summary := Summary{}
	cols, err := b.resolve(sourceAbs, buildID, &summary)
	if err != nil {
		return summary, err
	}

	if err := b.writeAll(ctx, cols, &summary); err != nil {
		return summary, err
	}

	summary.Duration = time.Since(start)
	b.recorder.BuildCompleted(summary.Duration.Seconds())
	_ = b.bus.Publish(hooks.BuildFinished{
		BuildID:   buildID,
		Documents: summary.Documents,
		Written:   summary.Written,
		Duration:  summary.Duration,
	})

	slog.Info("Build finished",
		logfields.BuildID(buildID),
		logfields.Count(summary.Documents),
		slog.Int("written", summary.Written),
		slog.Int("skipped", summary.Skipped),
		slog.Int("errors", summary.Errors),
		logfields.DurationMS(float64(summary.Duration.Milliseconds())))
	return summary, nil
}

// Resolve discovers and reads every document without rendering or
// writing. Used by the list command for discovery dry runs.
func (b *Builder) Resolve() ([]*collection.Collection, error) {
	sourceAbs, err := filepath.Abs(b.cfg.Source)
	if err != nil {
		return nil, err
	}
	var summary Summary
	return b.resolve(sourceAbs, uuid.NewString(), &summary)
}

// resolve runs the read half of a build: discover, concurrent read,
// sort.
func (b *Builder) resolve(sourceAbs, buildID string, summary *Summary) ([]*collection.Collection, error) {
	notify := &busNotifier{bus: b.bus, buildID: buildID, outputDir: b.opts.OutputDir}
	cols, err := collection.Discover(b.cfg, b.recordFactory(sourceAbs, notify))
	if err != nil {
		return nil, err
	}

	if err := b.readAll(cols, summary); err != nil {
		return cols, err
	}

	for _, c := range cols {
		c.Sort()
	}
	return cols, nil
}

// recordFactory builds per-collection document contexts lazily;
// Discover runs single-threaded so the map needs no lock.
func (b *Builder) recordFactory(sourceAbs string, notify document.Notifier) collection.RecordFactory {
	contexts := map[string]*document.Context{}
	return func(name, absPath string) *document.Record {
		ctx, ok := contexts[name]
		if !ok {
			cc := b.cfg.Collections[name]
			ctx = &document.Context{
				SourceDir: sourceAbs,
				Collection: document.CollectionInfo{
					Name:      name,
					Output:    cc.Output,
					Permalink: cc.Permalink,
					SortBy:    cc.SortBy,
				},
				Cascade:           b.cascade,
				SiteTime:          b.cfg.Site.Time,
				AvailableLocales:  b.cfg.Locales.Available,
				StrictFrontMatter: b.cfg.Build.StrictFrontMatter,
				Drafts:            b.cfg.Build.Drafts,
				Future:            b.cfg.Build.Future,
				Resolver:          b.resolver,
				OutputExt:         b.renderer,
				Hooks:             notify,
			}
			if b.cfg.Build.ExcerptSeparator != "" {
				ctx.Excerpter = &renderer.Excerpter{Separator: b.cfg.Build.ExcerptSeparator}
			}
			contexts[name] = ctx
		}
		return document.New(ctx, absPath)
	}
}

// readAll resolves every document on a bounded worker pool. Documents
// are independent; each document's pipeline stays sequential inside
// document.Read. The first strict/fatal error aborts the run.
func (b *Builder) readAll(cols []*collection.Collection, summary *Summary) error {
	jobs := make(chan *document.Record)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < b.cfg.Build.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				if err := document.Read(r); err != nil {
					b.recorder.ReadError(string(sgerrors.CategoryOf(err)))
					mu.Lock()
					summary.Errors++
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				b.recorder.DocumentRead(r.Collection())
				b.applyGitMetadata(r)
			}
		}()
	}

	for _, c := range cols {
		for _, r := range c.Docs {
			jobs <- r
		}
	}
	close(jobs)
	wg.Wait()
	return firstErr
}

// applyGitMetadata fills lastmod from git history when available and
// not already set by front matter or defaults.
func (b *Builder) applyGitMetadata(r *document.Record) {
	if b.git == nil {
		return
	}
	if _, ok := r.Data.GetLocal("lastmod"); ok {
		return
	}
	if t, ok := b.git.LastModified(r.RelativePath()); ok {
		r.Data.Set("lastmod", t)
	}
}

// writeAll renders and persists every writable document, honoring the
// incremental fingerprint check. Render failures are logged and
// counted; write failures abort (write-phase errors are never
// suppressed).
func (b *Builder) writeAll(ctx context.Context, cols []*collection.Collection, summary *Summary) error {
	for _, c := range cols {
		for _, r := range c.Docs {
			summary.Documents++
			if !r.Writable() {
				continue
			}

			dest, err := r.Destination(b.opts.OutputDir)
			if err != nil {
				return sgerrors.WriteFailed(r.Path(), err)
			}

			fp, fpErr := frontmatterops.Fingerprint(r.Data.Raw(), []byte(r.Content))
			if b.store != nil && fpErr == nil {
				prev, out, ok, err := b.store.Lookup(ctx, r.Path())
				if err == nil && ok && prev == fp && out == dest && fileExists(dest) {
					summary.Skipped++
					b.recorder.DocumentSkipped(c.Name)
					continue
				}
			}

			if err := b.renderer.Render(r); err != nil {
				slog.Error("render failed", logfields.Path(r.Path()), logfields.Error(err))
				summary.Errors++
				continue
			}
			if err := r.Write(b.opts.OutputDir); err != nil {
				return err
			}
			if b.store != nil && fpErr == nil {
				if err := b.store.Record(ctx, r.Path(), fp, dest); err != nil {
					slog.Warn("state record failed", logfields.Path(r.Path()), logfields.Error(err))
				}
			}
			summary.Written++
			b.recorder.DocumentWritten(c.Name)
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// cleanOutputDir empties the output directory without removing the
// directory itself (it may be a mount point or watched by a server).
func cleanOutputDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dir, 0o755)
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
