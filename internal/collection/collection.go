// Package collection groups documents sharing a type, directory
// convention, and URL template, and provides ordering plus
// next/previous navigation.
package collection

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/document"
)

// Collection is a named grouping of documents.
type Collection struct {
	Name   string
	Config config.CollectionConfig
	Docs   []*document.Record
}

// Sort orders Docs by the collection's sort key: date-then-path
// (document.Compare) by default, or plain path. Incomparable pairs sort
// as equal.
func (c *Collection) Sort() {
	if c.Config.SortBy == "path" {
		sort.SliceStable(c.Docs, func(i, j int) bool {
			return c.Docs[i].Path() < c.Docs[j].Path()
		})
		return
	}
	sort.SliceStable(c.Docs, func(i, j int) bool {
		cmp, err := c.Docs[i].Compare(c.Docs[j])
		if err != nil {
			return false
		}
		return cmp < 0
	})
}

// Next returns the document after r in the sorted sequence, or nil at
// the end. Navigation is a linear identity lookup over the
// already-sorted docs, not a separate index.
func (c *Collection) Next(r *document.Record) *document.Record {
	for i, d := range c.Docs {
		if d == r {
			if i+1 < len(c.Docs) {
				return c.Docs[i+1]
			}
			return nil
		}
	}
	return nil
}

// Previous returns the document before r, or nil at the start.
func (c *Collection) Previous(r *document.Record) *document.Record {
	for i, d := range c.Docs {
		if d == r {
			if i > 0 {
				return c.Docs[i-1]
			}
			return nil
		}
	}
	return nil
}

// skippable reports whether a file or directory name is excluded from
// enumeration: underscore and dot prefixes are reserved.
func skippable(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}
