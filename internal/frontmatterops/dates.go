package frontmatterops

import (
	"fmt"
	"strings"
	"time"
)

// dateFormats lists accepted textual date layouts, most specific first.
// yaml.v3 already decodes canonical timestamps into time.Time; these
// cover the looser forms authors actually write.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-1-2",
	"January 2, 2006",
	"Jan 2, 2006",
}

// CoerceDate converts a raw front matter value into a calendar timestamp.
func CoerceDate(v any) (time.Time, error) {
	switch vv := v.(type) {
	case time.Time:
		return vv, nil
	case *time.Time:
		if vv == nil {
			return time.Time{}, fmt.Errorf("nil date value")
		}
		return *vv, nil
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return time.Time{}, fmt.Errorf("empty date string")
		}
		for _, layout := range dateFormats {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date format %q", s)
	case int:
		return time.Unix(int64(vv), 0).UTC(), nil
	case int64:
		return time.Unix(vv, 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}
