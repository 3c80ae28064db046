package frontmatter

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

// Style captures formatting details needed for stable rewriting.
//
// It intentionally focuses on newline shape and does not attempt to
// preserve original YAML formatting.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Split separates YAML front matter from the document body.
//
// A front matter block starts with a line consisting solely of `---` at
// the very start of the file and ends at the first line consisting
// solely of `---` or `...`. Markers are case-sensitive and the interior
// match is non-greedy.
//
// If the document does not start with a front matter delimiter, or the
// block is never closed, had is false and body is the full input. A file
// without front matter is not an error.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style
	}

	frontmatterStart := len(open)
	rest := content[frontmatterStart:]

	for _, closer := range []string{"---", "..."} {
		closeLine := []byte(closer + nl)
		if bytes.HasPrefix(rest, closeLine) {
			bodyStart := frontmatterStart + len(closeLine)
			return []byte{}, content[bodyStart:], true, style
		}
	}

	end := -1
	closeLen := 0
	for _, closer := range []string{"---", "..."} {
		closeSeq := []byte(nl + closer + nl)
		if idx := bytes.Index(rest, closeSeq); idx >= 0 && (end < 0 || idx < end) {
			end = idx
			closeLen = len(closeSeq)
		}
	}
	if end < 0 {
		// A closer on the last line needs no trailing newline.
		for _, closer := range []string{"---", "..."} {
			if bytes.Equal(rest, []byte(closer)) {
				return []byte{}, []byte{}, true, style
			}
			closeSeq := []byte(nl + closer)
			if bytes.HasSuffix(rest, closeSeq) {
				frontmatterEnd := frontmatterStart + len(rest) - len(closeSeq) + len(nl)
				return content[frontmatterStart:frontmatterEnd], []byte{}, true, style
			}
		}
		// Unterminated block: the whole file is body.
		return nil, content, false, style
	}

	frontmatterEnd := frontmatterStart + end + len(nl)
	bodyStart := frontmatterStart + end + closeLen
	return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, style
}

// Parse parses raw YAML front matter (without --- delimiters) into a map.
func Parse(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// ParseFile parses an entire structured-data file (.yaml/.yml) into a map.
// Used for documents whose whole content is data rather than front matter
// plus body.
func ParseFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			newline = "\n"
			break
		}
	}

	hasTrailingNewline := len(content) > 0 && (content[len(content)-1] == '\n')

	return Style{
		Newline:            newline,
		HasTrailingNewline: hasTrailingNewline,
	}
}
