// Package permalink composes document URLs from placeholder templates
// and resolves them to output file paths.
package permalink

import (
	"regexp"
	"strings"
)

// Built-in permalink styles. A collection may name one of these instead
// of spelling out a template.
var styles = map[string]string{
	"date":    "/:categories/:year/:month/:day/:title:output_ext",
	"pretty":  "/:categories/:year/:month/:day/:title/",
	"ordinal": "/:categories/:year/:y_day/:title:output_ext",
	"none":    "/:categories/:title:output_ext",
}

// Expand resolves a built-in style name to its template; any other
// string is treated as a literal template.
func Expand(styleOrTemplate string) string {
	if t, ok := styles[styleOrTemplate]; ok {
		return t
	}
	return styleOrTemplate
}

// Placeholders maps template token names (without the leading colon) to
// their per-document values.
type Placeholders map[string]string

var tokenPattern = regexp.MustCompile(`:([a-z_]+)`)

// Compose substitutes placeholder tokens into template and normalizes
// the result: duplicate slashes collapse and the URL always starts with
// a slash. Unknown tokens substitute to empty, which the slash collapse
// then absorbs (an empty :categories leaves no double slash behind).
func Compose(template string, placeholders Placeholders) string {
	out := tokenPattern.ReplaceAllStringFunc(template, func(tok string) string {
		return placeholders[tok[1:]]
	})
	out = collapseSlashes(out)
	if !strings.HasPrefix(out, "/") {
		out = "/" + out
	}
	return out
}

func collapseSlashes(s string) string {
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}
	return s
}
