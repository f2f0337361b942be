package foundation

// Toggle is a section that is either enabled with a payload or explicitly
// disabled. Unlike Option, a disabled Toggle is a value the downstream
// consumer must see (typically serialised as a literal false).
type Toggle[T any] struct {
	value   T
	enabled bool
}

// Enabled creates an enabled Toggle carrying value.
func Enabled[T any](value T) Toggle[T] {
	return Toggle[T]{value: value, enabled: true}
}

// Disabled creates a disabled Toggle.
func Disabled[T any]() Toggle[T] {
	return Toggle[T]{}
}

// EnabledIf returns Enabled(build()) when cond holds, Disabled otherwise.
// build is only invoked for enabled toggles.
func EnabledIf[T any](cond bool, build func() T) Toggle[T] {
	if !cond {
		return Disabled[T]()
	}
	return Enabled(build())
}

// IsEnabled reports whether the toggle is enabled.
func (t Toggle[T]) IsEnabled() bool {
	return t.enabled
}

// Get returns the payload and whether the toggle is enabled.
func (t Toggle[T]) Get() (T, bool) {
	return t.value, t.enabled
}

// ToggleValue converts the toggle to its wire form: fn(payload) when enabled,
// false when disabled.
func ToggleValue[T any](t Toggle[T], fn func(T) any) any {
	if !t.enabled {
		return false
	}
	return fn(t.value)
}
