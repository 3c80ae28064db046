// Package document implements the resolved document record: front
// matter merged with cascading defaults, filename-derived attributes,
// and memoized derived fields (url, destination, id).
package document

import (
	"fmt"
	neturl "net/url"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/defaults"
	"git.home.luguber.info/inful/sitegen/internal/frontmatterops"
	"git.home.luguber.info/inful/sitegen/internal/permalink"
)

// CollectionInfo is the slice of collection configuration a record
// needs: identity, output policy, and the permalink template.
type CollectionInfo struct {
	Name      string
	Output    bool
	Permalink string
	SortBy    string
}

// ExtensionOracle answers what output extension the rendering pipeline
// will produce for a document. Cross-component query; the result is
// memoized per record.
type ExtensionOracle interface {
	OutputExtensionFor(r *Record) string
}

// Excerpter produces an excerpt value for a document, invoked once at
// read time when configured.
type Excerpter interface {
	ExcerptFor(r *Record) (any, bool)
}

// Notifier receives fire-and-forget lifecycle notifications.
type Notifier interface {
	PostInit(r *Record)
	PostWrite(r *Record)
}

// Context carries the read-mostly collaborators shared by every record
// in a collection. It is never mutated during the read phase, so
// concurrent document resolution can share one instance.
type Context struct {
	SourceDir         string // absolute content root
	Collection        CollectionInfo
	Cascade           *defaults.Cascade
	SiteTime          time.Time
	AvailableLocales  []string
	StrictFrontMatter bool
	Drafts            bool
	Future            bool

	Resolver  *FilenameResolver
	OutputExt ExtensionOracle // nil means ".html" for everything
	Excerpter Excerpter       // nil disables excerpt generation
	Hooks     Notifier        // nil disables notifications
}

// Record is the aggregate: owns the metadata store, raw content, and
// memoized derived fields. Created when a collection enumerates a
// source file; Read populates data/content; Write persists output.
type Record struct {
	path string
	ctx  *Context

	Data    *Metadata
	Content string

	// RawOutput holds rendered output bytes, written by the rendering
	// pipeline before Write.
	RawOutput []byte

	relPath   memo[string]
	url       memo[string]
	id        memo[string]
	outputExt memo[string]
	dest      memo[string]
	destMu    sync.Mutex
	destBase  string
}

// New creates a record for a source file and fires the post-init hook.
func New(ctx *Context, absPath string) *Record {
	r := &Record{path: absPath, ctx: ctx}
	r.Data = NewMetadata(func(key string) (any, bool) {
		if ctx.Cascade == nil {
			return nil, false
		}
		return ctx.Cascade.Find(r.RelativePath(), ctx.Collection.Name, key)
	})
	if ctx.Hooks != nil {
		ctx.Hooks.PostInit(r)
	}
	return r
}

// Path returns the absolute source file path.
func (r *Record) Path() string { return r.path }

// Extension returns the source file extension including the dot. Always
// derived from path, never stored separately.
func (r *Record) Extension() string { return filepath.Ext(r.path) }

// Collection returns the owning collection name.
func (r *Record) Collection() string { return r.ctx.Collection.Name }

// IsDataFile reports whether the source is a whole-file data document
// (.yaml/.yml): metadata only, empty body, never written as output.
func (r *Record) IsDataFile() bool {
	ext := strings.ToLower(r.Extension())
	return ext == ".yaml" || ext == ".yml"
}

// RelativePath returns the path relative to the content root, with
// forward slashes. Memoized.
func (r *Record) RelativePath() string {
	rel, _ := r.relPath.get(func() (string, error) {
		rel, err := filepath.Rel(r.ctx.SourceDir, r.path)
		if err != nil {
			return filepath.ToSlash(r.path), nil
		}
		return filepath.ToSlash(rel), nil
	})
	return rel
}

// Date returns the document date when resolvable. After a successful
// Read it always is (filename, front matter, or site default).
func (r *Record) Date() (time.Time, bool) {
	v, ok := r.Data.Get("date")
	if !ok {
		return time.Time{}, false
	}
	t, err := frontmatterops.CoerceDate(v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Slug returns the document slug: explicit front matter, else inferred
// from the filename.
func (r *Record) Slug() string {
	if v, ok := r.Data.GetLocal("slug"); ok {
		if s, isStr := v.(string); isStr && s != "" {
			return s
		}
	}
	return r.ctx.Resolver.Resolve(r.RelativePath()).Slug
}

// OutputExt returns the output extension the rendering pipeline will
// produce for this document. Memoized for the record's lifetime.
func (r *Record) OutputExt() string {
	ext, _ := r.outputExt.get(func() (string, error) {
		if r.ctx.OutputExt != nil {
			return r.ctx.OutputExt.OutputExtensionFor(r), nil
		}
		return ".html", nil
	})
	return ext
}

// URL returns the document's canonical URL. An explicit permalink in
// front matter wins; otherwise the collection's template is composed
// with this document's placeholders. Memoized.
func (r *Record) URL() (string, error) {
	return r.url.get(func() (string, error) {
		if v, ok := r.Data.Get("permalink"); ok {
			if s, isStr := v.(string); isStr && s != "" {
				return s, nil
			}
		}
		template := permalink.Expand(r.ctx.Collection.Permalink)
		return permalink.Compose(template, r.placeholders()), nil
	})
}

// ID returns the stable document identity: the URL directory joined
// with the slug. Memoized.
func (r *Record) ID() string {
	id, _ := r.id.get(func() (string, error) {
		u, err := r.URL()
		if err != nil {
			u = "/" + strings.TrimSuffix(r.RelativePath(), r.Extension())
		}
		return path.Join(path.Dir(strings.TrimSuffix(u, "/")), r.Slug()), nil
	})
	return id
}

// Destination maps the document URL into an output path under baseDir.
// Memoized per baseDir; a call with a different baseDir recomputes.
func (r *Record) Destination(baseDir string) (string, error) {
	r.destMu.Lock()
	if baseDir != r.destBase {
		r.dest.reset()
		r.destBase = baseDir
	}
	r.destMu.Unlock()
	return r.dest.get(func() (string, error) {
		u, err := r.URL()
		if err != nil {
			return "", err
		}
		return permalink.Destination(baseDir, u, r.OutputExt())
	})
}

// Writable reports whether this document should produce output: the
// collection emits output, the document is not a whole-file data
// document, and the publish policy passes (published not false, drafts
// and future dates only when enabled).
func (r *Record) Writable() bool {
	if !r.ctx.Collection.Output || r.IsDataFile() {
		return false
	}
	if v, ok := r.Data.Get("published"); ok {
		if b, isBool := v.(bool); isBool && !b {
			return false
		}
	}
	if v, ok := r.Data.Get("draft"); ok {
		if b, isBool := v.(bool); isBool && b && !r.ctx.Drafts {
			return false
		}
	}
	if !r.ctx.Future {
		if d, ok := r.Date(); ok && d.After(r.ctx.SiteTime) {
			return false
		}
	}
	return true
}

// Invalidate drops every memoized derived field. Hook callbacks that
// mutate Data after the read phase call this; without it the memoized
// fields are undefined.
func (r *Record) Invalidate() {
	r.url.reset()
	r.id.reset()
	r.outputExt.reset()
	r.dest.reset()
}

// placeholders assembles the substitution map for URL templates.
func (r *Record) placeholders() permalink.Placeholders {
	slug := r.Slug()
	p := permalink.Placeholders{
		"collection": r.ctx.Collection.Name,
		"name":       slug,
		"slug":       slug,
		"title":      slug,
		"output_ext": r.OutputExt(),
	}

	if dir := path.Dir(r.RelativePath()); dir != "." {
		p["path"] = dir
	}

	d, ok := r.Date()
	if !ok {
		d = r.ctx.SiteTime
	}
	p["year"] = fmt.Sprintf("%04d", d.Year())
	p["month"] = fmt.Sprintf("%02d", int(d.Month()))
	p["day"] = fmt.Sprintf("%02d", d.Day())
	p["hour"] = fmt.Sprintf("%02d", d.Hour())
	p["minute"] = fmt.Sprintf("%02d", d.Minute())
	p["second"] = fmt.Sprintf("%02d", d.Second())
	p["y_day"] = fmt.Sprintf("%03d", d.YearDay())

	if cats := frontmatterops.CategoryStrings(r.Data.GetOr("categories", nil)); len(cats) > 0 {
		escaped := make([]string, len(cats))
		for i, c := range cats {
			escaped[i] = neturl.PathEscape(c)
		}
		p["categories"] = strings.Join(escaped, "/")
	}

	if v, ok := r.Data.Get("locale"); ok {
		if s, isStr := v.(string); isStr {
			p["locale"] = s
		}
	}
	return p
}
