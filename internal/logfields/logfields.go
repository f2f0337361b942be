package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCodePath   = "code_path"
	KeyFeature    = "feature"
	KeyFormat     = "format"
	KeyRemote     = "remote"
	KeyBranch     = "branch"
	KeyKey        = "key"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func CodePath(p string) slog.Attr     { return slog.String(KeyCodePath, p) }
func Feature(name string) slog.Attr   { return slog.String(KeyFeature, name) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Remote(url string) slog.Attr     { return slog.String(KeyRemote, url) }
func Branch(b string) slog.Attr       { return slog.String(KeyBranch, b) }
func Key(k string) slog.Attr          { return slog.String(KeyKey, k) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
