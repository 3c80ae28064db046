package collection

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/document"
)

// DefaultCollection receives files that belong to no configured
// collection directory.
const DefaultCollection = "pages"

// RecordFactory creates a record for a discovered file. The build layer
// supplies it so each collection gets its own document context.
type RecordFactory func(collectionName, absPath string) *document.Record

// Discover enumerates the content tree. A top-level directory whose
// name matches a configured collection becomes that collection; every
// other file lands in the default pages collection. Underscore- and
// dot-prefixed names are skipped.
func Discover(cfg *config.Config, newRecord RecordFactory) ([]*Collection, error) {
	sourceAbs, err := filepath.Abs(cfg.Source)
	if err != nil {
		return nil, err
	}

	byName := map[string]*Collection{}
	collectionFor := func(name string) *Collection {
		if c, ok := byName[name]; ok {
			return c
		}
		cc, ok := cfg.Collections[name]
		if !ok {
			cc = config.CollectionConfig{Output: true, Permalink: config.PermalinkPretty, SortBy: "date"}
		}
		c := &Collection{Name: name, Config: cc}
		byName[name] = c
		return c
	}

	err = filepath.WalkDir(sourceAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == sourceAbs {
			return nil
		}
		if skippable(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceAbs, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		name := DefaultCollection
		if idx := strings.Index(rel, "/"); idx > 0 {
			if _, ok := cfg.Collections[rel[:idx]]; ok && rel[:idx] != DefaultCollection {
				name = rel[:idx]
			}
		}

		c := collectionFor(name)
		c.Docs = append(c.Docs, newRecord(name, path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*Collection, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
