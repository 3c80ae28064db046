package permalink

import (
	neturl "net/url"
	"path/filepath"
	"strings"
)

// Destination maps a document URL to a concrete output file path under
// baseDir. The URL is percent-decoded before being joined into a
// filesystem path. A URL ending in "/" maps to <dir>/index.html;
// otherwise the output extension is appended unless the URL already
// carries it.
func Destination(baseDir, url, outputExt string) (string, error) {
	decoded, err := neturl.PathUnescape(url)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(baseDir, filepath.FromSlash(decoded))
	switch {
	case strings.HasSuffix(url, "/"):
		dest = filepath.Join(dest, "index.html")
	case outputExt != "" && !strings.HasSuffix(dest, outputExt):
		dest += outputExt
	}
	return dest, nil
}
