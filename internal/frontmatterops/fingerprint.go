package frontmatterops

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/frontmatter"
)

// Keys excluded from the fingerprint: values that change without the
// document meaningfully changing.
const (
	fingerprintKeyLastmod = "lastmod"
	fingerprintKeyExcerpt = "excerpt"
	fingerprintKeySummary = "summary"
)

// Fingerprint computes the canonical content fingerprint for a document.
//
// Canonicalization rules:
//   - excludes: lastmod, excerpt, summary
//   - serializes YAML with sorted keys and LF newlines
//   - trims a single trailing newline from the serialized YAML before hashing
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}

	fieldsForHash := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case fingerprintKeyLastmod, fingerprintKeyExcerpt, fingerprintKeySummary:
			continue
		}
		fieldsForHash[k] = v
	}

	serialized := ""
	if len(fieldsForHash) > 0 {
		raw, err := frontmatter.Serialize(fieldsForHash, frontmatter.Style{Newline: "\n"})
		if err != nil {
			return "", err
		}
		serialized = strings.TrimSuffix(string(raw), "\n")
	}

	h := sha256.New()
	h.Write([]byte(serialized))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}
