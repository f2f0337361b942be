package config

import (
	"log/slog"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// Decoded project files are untyped. The helpers below pick values out of
// them leniently: a key holding an unexpected type is logged and treated
// as absent.

func logMalformed(key string, v any) {
	slog.Debug("Ignoring malformed config field", logfields.Key(key), slog.String("type", typeName(v)))
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case map[string]any:
		return "table"
	case []any:
		return "array"
	default:
		return "other"
	}
}

func stringField(m map[string]any, key, path string) foundation.Option[string] {
	v, ok := m[key]
	if !ok {
		return foundation.None[string]()
	}
	s, ok := v.(string)
	if !ok {
		logMalformed(path, v)
		return foundation.None[string]()
	}
	return foundation.Some(s)
}

func boolField(m map[string]any, key, path string) foundation.Option[bool] {
	v, ok := m[key]
	if !ok {
		return foundation.None[bool]()
	}
	b, ok := v.(bool)
	if !ok {
		logMalformed(path, v)
		return foundation.None[bool]()
	}
	return foundation.Some(b)
}

func tableField(m map[string]any, key, path string) foundation.Option[map[string]any] {
	v, ok := m[key]
	if !ok {
		return foundation.None[map[string]any]()
	}
	t, ok := v.(map[string]any)
	if !ok {
		logMalformed(path, v)
		return foundation.None[map[string]any]()
	}
	return foundation.Some(t)
}

func arrayField(m map[string]any, key, path string) foundation.Option[[]any] {
	v, ok := m[key]
	if !ok {
		return foundation.None[[]any]()
	}
	a, ok := v.([]any)
	if !ok {
		logMalformed(path, v)
		return foundation.None[[]any]()
	}
	return foundation.Some(a)
}

// stringsField returns the string elements of an array, skipping others.
func stringsField(m map[string]any, key, path string) []string {
	arr := arrayField(m, key, path).UnwrapOr(nil)
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			logMalformed(path+"[]", v)
			continue
		}
		out = append(out, s)
	}
	return out
}

// extraFields returns the entries of m whose keys are not in known.
func extraFields(m map[string]any, known ...string) map[string]any {
	skip := make(map[string]struct{}, len(known))
	for _, k := range known {
		skip[k] = struct{}{}
	}
	var out map[string]any
	for k, v := range m {
		if _, ok := skip[k]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = v
	}
	return out
}
