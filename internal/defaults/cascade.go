// Package defaults implements cascading front matter defaults: site
// configured rules that supply values for documents matching a
// path/type scope, consulted only when a key is otherwise absent.
package defaults

import (
	"path"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/frontmatterops"
)

// Cascade holds the configured defaults rules. It is immutable after
// construction and safe for concurrent readers.
type Cascade struct {
	rules []config.DefaultsRule
}

// NewCascade builds a cascade from configured rules. Rule order is
// significant: later rules win ties.
func NewCascade(rules []config.DefaultsRule) *Cascade {
	return &Cascade{rules: rules}
}

// Find returns the best-matching default value for key, or absent.
// Specificity: a rule with a longer scope path beats a shorter one;
// among equals the later rule wins.
func (c *Cascade) Find(relPath, collectionType, key string) (any, bool) {
	var (
		found    any
		ok       bool
		bestSpec = -1
	)
	for _, r := range c.rules {
		if !scopeMatches(r.Scope, relPath, collectionType) {
			continue
		}
		v, has := r.Values[key]
		if !has {
			continue
		}
		spec := len(r.Scope.Path)
		if spec >= bestSpec {
			bestSpec = spec
			found, ok = v, true
		}
	}
	return found, ok
}

// All merges every matching rule's values, least specific first, so the
// most specific rule ends up on top. Used once at read time to seed a
// document's data before its own front matter is applied.
func (c *Cascade) All(relPath, collectionType string) map[string]any {
	matched := make([]config.DefaultsRule, 0, len(c.rules))
	for _, r := range c.rules {
		if scopeMatches(r.Scope, relPath, collectionType) {
			matched = append(matched, r)
		}
	}
	// Stable sort keeps configured order within equal specificity.
	sort.SliceStable(matched, func(i, j int) bool {
		return len(matched[i].Scope.Path) < len(matched[j].Scope.Path)
	})

	out := map[string]any{}
	for _, r := range matched {
		out = frontmatterops.MergeMaps(out, r.Values)
	}
	return out
}

// scopeMatches reports whether a rule scope covers the document at
// relPath belonging to collectionType.
func scopeMatches(scope config.DefaultsScope, relPath, collectionType string) bool {
	if scope.Type != "" && scope.Type != collectionType {
		return false
	}
	if scope.Path == "" {
		return true
	}
	p := strings.Trim(scope.Path, "/")
	rel := strings.Trim(relPath, "/")
	if p == rel || strings.HasPrefix(rel, p+"/") {
		return true
	}
	if strings.ContainsAny(p, "*?[") {
		if ok, err := path.Match(p, rel); err == nil && ok {
			return true
		}
		if ok, err := path.Match(p, path.Dir(rel)); err == nil && ok {
			return true
		}
	}
	return false
}
