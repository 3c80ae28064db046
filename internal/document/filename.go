package document

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Filename patterns, applied to the final path segment only (directory
// components never participate in the date test).
const (
	datedBasename    = `^(\d{2,4})-(\d{1,2})-(\d{1,2})-(.*)(\.[^.]*)$`
	datelessBasename = `^(.*?)(\.[^.]*)?$`
)

// FilenameResolution is the outcome of parsing a relative path.
type FilenameResolution struct {
	Date    time.Time
	HasDate bool
	Slug    string
	Ext     string
}

// FilenameResolver parses relative paths into (date, slug, extension).
// Compiled patterns live in an instance-owned write-once cache rather
// than a mutable package global.
type FilenameResolver struct {
	cache sync.Map // pattern string -> *regexp.Regexp
	loc   *time.Location
}

// NewFilenameResolver creates a resolver whose inferred dates are
// anchored in loc (the site timezone). A nil loc means local time.
func NewFilenameResolver(loc *time.Location) *FilenameResolver {
	if loc == nil {
		loc = time.Local
	}
	return &FilenameResolver{loc: loc}
}

func (fr *FilenameResolver) pattern(expr string) *regexp.Regexp {
	if re, ok := fr.cache.Load(expr); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(expr)
	actual, _ := fr.cache.LoadOrStore(expr, re)
	return actual.(*regexp.Regexp)
}

// Resolve parses relativePath. Precedence: a dated basename
// (year-month-day-slug.ext) wins over the dateless form. Trailing
// periods are stripped from the slug in both cases.
func (fr *FilenameResolver) Resolve(relativePath string) FilenameResolution {
	base := relativePath
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}

	if m := fr.pattern(datedBasename).FindStringSubmatch(base); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return FilenameResolution{
			Date:    time.Date(year, time.Month(month), day, 0, 0, 0, 0, fr.loc),
			HasDate: true,
			Slug:    stripTrailingPeriods(m[4]),
			Ext:     m[5],
		}
	}

	m := fr.pattern(datelessBasename).FindStringSubmatch(base)
	return FilenameResolution{
		Slug: stripTrailingPeriods(m[1]),
		Ext:  m[2],
	}
}

func stripTrailingPeriods(s string) string {
	return strings.TrimRight(s, ".")
}
