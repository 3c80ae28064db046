package frontmatterops

import (
	"strings"
)

// Titleize turns a slug into a display title: separators become spaces
// and each word is capitalized.
func Titleize(slug string) string {
	base := strings.ReplaceAll(slug, "_", "-")
	parts := strings.Split(base, "-")
	out := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, strings.ToUpper(part[:1])+strings.ToLower(part[1:]))
	}
	return strings.Join(out, " ")
}

// EnsureTitle sets title to fallback when missing or empty/whitespace.
func EnsureTitle(fields map[string]any, fallback string) (changed bool) {
	if fields == nil {
		return false
	}

	v, ok := fields["title"]
	if !ok || v == nil {
		fields["title"] = fallback
		return true
	}

	s, ok := v.(string)
	if !ok {
		return false
	}

	if strings.TrimSpace(s) == "" {
		fields["title"] = fallback
		return true
	}

	return false
}
