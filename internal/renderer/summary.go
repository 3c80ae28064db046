package renderer

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText strips markup from an HTML fragment, returning the text
// content with collapsed whitespace. Used for meta description
// summaries derived from rendered excerpts.
func PlainText(fragment string) string {
	tok := html.NewTokenizer(strings.NewReader(fragment))
	var parts []string
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.TextToken:
			if text := strings.TrimSpace(string(tok.Text())); text != "" {
				parts = append(parts, text)
			}
		}
	}
}
