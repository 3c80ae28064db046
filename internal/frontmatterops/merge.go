// Package frontmatterops implements field-level operations on parsed
// front matter maps: merging, date coercion, derived base fields, and
// content fingerprinting.
package frontmatterops

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/util/sets"
)

// MergeData merges incoming into target with right-biased deep-merge
// semantics: maps merge recursively, sequences and scalars are replaced
// by the incoming value. The categories key is special-cased as a set
// union (a delimited string is split on whitespace first).
//
// After merging, a present date key is re-validated; coercion failure
// returns an InvalidDate error carrying the raw value and the source
// label. The merge is deliberately not transactional: on date failure
// the non-date fields stay merged. Downstream behavior depends on the
// partially-merged data surviving, so do not roll back here.
func MergeData(target, incoming map[string]any, source string) error {
	for k, v := range incoming {
		if k == "categories" {
			target[k] = mergeCategories(target[k], v)
			continue
		}
		existing, ok := target[k]
		if !ok {
			target[k] = v
			continue
		}
		em, eIsMap := asStringMap(existing)
		nm, nIsMap := asStringMap(v)
		if eIsMap && nIsMap {
			target[k] = mergeMaps(em, nm)
			continue
		}
		// Sequences and scalars: incoming replaces existing.
		target[k] = v
	}

	if raw, ok := target["date"]; ok {
		t, err := CoerceDate(raw)
		if err != nil {
			return errors.InvalidDate(raw, source)
		}
		target["date"] = t
	}
	return nil
}

// MergeMaps returns a fresh map holding the recursive right-biased merge
// of dst and src, without the categories/date handling MergeData adds.
// Used by the defaults cascade to stack rule values.
func MergeMaps(dst, src map[string]any) map[string]any {
	return mergeMaps(dst, src)
}

// mergeMaps returns a fresh map holding the recursive right-biased merge
// of dst and src.
func mergeMaps(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		if existing, ok := out[k]; ok {
			if em, okm := asStringMap(existing); okm {
				if nm, okn := asStringMap(v); okn {
					out[k] = mergeMaps(em, nm)
					continue
				}
			}
		}
		out[k] = v
	}
	return out
}

// mergeCategories unions existing and incoming category values as
// strings. A single delimited incoming string is split on whitespace.
// The result is duplicate-free; order follows lexical sorting for
// deterministic serialization.
func mergeCategories(existing, incoming any) []string {
	union := sets.New[string]()
	for _, v := range categoryValues(existing) {
		union.Add(v)
	}
	for _, v := range categoryValues(incoming) {
		union.Add(v)
	}
	return sets.SortedStrings(union)
}

// CategoryStrings coerces any stored categories value into a string
// slice: a delimited string splits on whitespace, sequence elements are
// stringified, nil yields nil.
func CategoryStrings(v any) []string {
	return categoryValues(v)
}

func categoryValues(v any) []string {
	switch vv := v.(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(vv)
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(vv)}
	}
}

func asStringMap(v any) (map[string]any, bool) {
	switch vv := v.(type) {
	case map[string]any:
		return vv, true
	case map[any]any:
		out := make(map[string]any, len(vv))
		for k, val := range vv {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
