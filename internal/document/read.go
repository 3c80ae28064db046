package document

import (
	"log/slog"
	"os"
	"path"
	"strings"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/frontmatter"
	"git.home.luguber.info/inful/sitegen/internal/frontmatterops"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Read populates Data and Content: cascading defaults are merged first,
// then the file's own front matter, then post-read population fills
// title, categories, tags, locale, date, and excerpt.
//
// Failures during content read or front matter parsing are classified
// and logged; they propagate only in strict front matter mode or when
// independently classified fatal. Otherwise the document carries
// whatever partial data it has.
func Read(r *Record) error {
	rel := r.RelativePath()

	if r.ctx.Cascade != nil {
		seed := r.ctx.Cascade.All(rel, r.ctx.Collection.Name)
		if err := r.Data.Merge(seed, "defaults"); err != nil {
			if herr := r.handleReadError(err); herr != nil {
				return herr
			}
		}
	}

	if err := r.readContent(); err != nil {
		if herr := r.handleReadError(err); herr != nil {
			return herr
		}
	}

	r.populate()
	return nil
}

// readContent splits and parses the source file. A structured-data
// extension (.yaml/.yml) means the whole file is data and content stays
// empty; otherwise an optional front matter block is split off the body.
func (r *Record) readContent() error {
	if r.IsDataFile() {
		fields, err := frontmatter.ParseFile(r.path)
		if err != nil {
			return classifyParseError(r.path, err)
		}
		r.Content = ""
		return r.Data.Merge(fields, r.RelativePath())
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return sgerrors.ReadFailed(r.path, err)
	}

	fm, body, had, _ := frontmatter.Split(raw)
	r.Content = string(body)
	if !had {
		return nil
	}

	fields, err := frontmatter.Parse(fm)
	if err != nil {
		return sgerrors.FrontMatterSyntax(r.path, err)
	}
	return r.Data.Merge(fields, r.RelativePath())
}

// classifyParseError separates structured-data syntax errors from
// generic read failures.
func classifyParseError(path string, err error) error {
	if os.IsNotExist(err) || os.IsPermission(err) {
		return sgerrors.ReadFailed(path, err)
	}
	return sgerrors.FrontMatterSyntax(path, err)
}

// populate runs the post-read population pass: filename inference,
// title fallback, category/tag normalization, locale, date guarantee,
// excerpt.
func (r *Record) populate() {
	rel := r.RelativePath()
	res := r.ctx.Resolver.Resolve(rel)

	// Filename date wins over an absent date, or over an existing date
	// whose second value equals the site-time fallback (an unset or
	// defaulted date). It never overrides an explicitly different date.
	if res.HasDate {
		existing, ok := r.Data.GetLocal("date")
		if !ok {
			r.Data.Set("date", res.Date)
		} else if t, err := frontmatterops.CoerceDate(existing); err == nil && t.Unix() == r.ctx.SiteTime.Unix() {
			r.Data.Set("date", res.Date)
		}
	}

	// Front matter wins over the filename for slug and ext.
	if _, ok := r.Data.GetLocal("slug"); !ok && res.Slug != "" {
		r.Data.Set("slug", res.Slug)
	}
	if _, ok := r.Data.GetLocal("ext"); !ok && res.Ext != "" {
		r.Data.Set("ext", res.Ext)
	}

	frontmatterops.EnsureTitle(r.Data.Raw(), frontmatterops.Titleize(r.Slug()))

	// Directories between the collection root and the file contribute
	// categories (union with whatever front matter supplied).
	if dirCats := directoryCategories(rel); len(dirCats) > 0 {
		if err := r.Data.Merge(map[string]any{"categories": dirCats}, "path:"+rel); err != nil {
			slog.Warn("category merge failed", logfields.RelPath(rel), logfields.Error(err))
		}
	}
	normalizeTags(r.Data)

	base := path.Base(rel)
	base = strings.TrimSuffix(base, path.Ext(base))
	DetermineLocale(r.Data, base, r.ctx.AvailableLocales)

	// The date invariant: always resolvable after read.
	if _, ok := r.Data.GetLocal("date"); !ok {
		r.Data.Set("date", r.ctx.SiteTime)
	}

	if r.ctx.Excerpter != nil {
		if _, ok := r.Data.GetLocal("excerpt"); !ok {
			if v, ok := r.ctx.Excerpter.ExcerptFor(r); ok {
				r.Data.Set("excerpt", v)
			}
		}
	}
}

// handleReadError logs err with document context and decides whether it
// propagates: strict front matter mode and fatal classifications
// re-raise, anything else is swallowed (the document keeps partial data).
func (r *Record) handleReadError(err error) error {
	slog.Error("document read error",
		logfields.Path(r.path),
		logfields.Collection(r.ctx.Collection.Name),
		logfields.Error(err))
	if r.ctx.StrictFrontMatter || sgerrors.IsFatal(err) {
		return err
	}
	return nil
}

// directoryCategories extracts category names from the directory
// components of a collection-relative path. The first component is the
// collection directory itself and the last is the filename; everything
// between contributes.
func directoryCategories(rel string) []string {
	parts := strings.Split(rel, "/")
	if len(parts) <= 2 {
		return nil
	}
	return parts[1 : len(parts)-1]
}

// normalizeTags coerces a delimited tags string into a sequence.
func normalizeTags(data *Metadata) {
	v, ok := data.GetLocal("tags")
	if !ok {
		return
	}
	if s, isStr := v.(string); isStr {
		data.Set("tags", strings.Fields(s))
	}
}
