package renderer

import (
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/document"
)

// Excerpter extracts the leading portion of a document body, up to the
// configured separator. Implements document.Excerpter.
type Excerpter struct {
	Separator string
}

// ExcerptFor returns the body text before the first separator
// occurrence. Reports false when no separator is configured, the body
// is empty, or the separator never appears (a short post is its own
// excerpt only when the separator splits it).
func (e *Excerpter) ExcerptFor(r *document.Record) (any, bool) {
	if e.Separator == "" || r.Content == "" {
		return nil, false
	}
	head, _, found := strings.Cut(r.Content, e.Separator)
	if !found {
		return strings.TrimSpace(r.Content), true
	}
	return strings.TrimSpace(head), true
}
