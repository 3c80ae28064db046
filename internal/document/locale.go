package document

import (
	"strings"

	"golang.org/x/text/language"
)

// DetermineLocale fills data["locale"] for a document whose front matter
// does not already set one. Candidates are probed in order: language,
// lang, then the last dot-delimited segment of the basename (the
// slug.locale.ext convention). The first present candidate is matched
// against the available locales; a candidate outside the set is
// discarded silently.
//
// Matching is tolerant of tag spelling: both sides canonicalize through
// golang.org/x/text/language, so "en_US" finds a configured "en-US".
// The committed value is the configured spelling.
func DetermineLocale(data *Metadata, basenameWithoutExt string, available []string) {
	if _, ok := data.GetLocal("locale"); ok {
		return
	}

	candidate := ""
	for _, key := range []string{"language", "lang"} {
		if v, ok := data.GetLocal(key); ok {
			if s, isStr := v.(string); isStr && s != "" {
				candidate = s
				break
			}
		}
	}
	if candidate == "" {
		if idx := strings.LastIndex(basenameWithoutExt, "."); idx >= 0 {
			candidate = basenameWithoutExt[idx+1:]
		}
	}
	if candidate == "" {
		return
	}

	want, err := language.Parse(candidate)
	if err != nil {
		return
	}
	for _, avail := range available {
		tag, err := language.Parse(avail)
		if err != nil {
			continue
		}
		if tag == want {
			data.Set("locale", avail)
			return
		}
	}
}
