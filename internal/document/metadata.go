package document

import (
	"git.home.luguber.info/inful/sitegen/internal/frontmatterops"
)

// Metadata wraps a document's front matter map and intercepts
// missing-key reads with a lazy fallback (the defaults cascade). This
// replaces per-instance default behavior with an explicit decorator
// over a plain map.
//
// Metadata is written only during the read phase, which is sequential
// per document. Post-read it is treated as read-only by concurrent
// callers; hook callbacks that mutate it must call Record.Invalidate
// afterwards, otherwise memoized derived fields are undefined.
type Metadata struct {
	fields   map[string]any
	fallback func(key string) (any, bool)
}

// NewMetadata creates an empty metadata store with an optional
// missing-key fallback.
func NewMetadata(fallback func(key string) (any, bool)) *Metadata {
	return &Metadata{fields: map[string]any{}, fallback: fallback}
}

// Get returns the value for key. An absent key falls through to the
// fallback before reporting absent.
func (m *Metadata) Get(key string) (any, bool) {
	if v, ok := m.fields[key]; ok {
		return v, true
	}
	if m.fallback != nil {
		return m.fallback(key)
	}
	return nil, false
}

// GetOr returns the value for key, or def when absent everywhere.
func (m *Metadata) GetOr(key string, def any) any {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// GetLocal returns the value stored directly in the map, without the
// fallback. Used where defaults must not mask absence (slug/ext/date
// inference precedence).
func (m *Metadata) GetLocal(key string) (any, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// Set stores a value directly.
func (m *Metadata) Set(key string, v any) { m.fields[key] = v }

// Merge applies incoming with the standard merge semantics
// (frontmatterops.MergeData), labeled with source for diagnostics.
func (m *Metadata) Merge(incoming map[string]any, source string) error {
	return frontmatterops.MergeData(m.fields, incoming, source)
}

// Raw exposes the underlying map. The attribute-bag surface for the
// templating layer; callers must not retain it across mutations.
func (m *Metadata) Raw() map[string]any { return m.fields }

// Len returns the number of directly stored keys.
func (m *Metadata) Len() int { return len(m.fields) }
