package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyRelPath    = "relative_path"
	KeyCollection = "collection"
	KeySource     = "source"
	KeyStage      = "stage"
	KeyURL        = "url"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func RelPath(p string) slog.Attr       { return slog.String(KeyRelPath, p) }
func Collection(c string) slog.Attr    { return slog.String(KeyCollection, c) }
func Source(s string) slog.Attr        { return slog.String(KeySource, s) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
