package foundation

import (
	"fmt"
	"strings"
)

// defaultNormalizer provides standard string normalization.
func defaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely formatted strings onto a closed set of values.
type Normalizer[T comparable] struct {
	validValues map[string]T
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[defaultNormalizer(k)] = v
	}
	return &Normalizer[T]{validValues: normalized}
}

// Lookup returns the value for raw and whether it was recognized.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	value, exists := n.validValues[defaultNormalizer(raw)]
	return value, exists
}

// NormalizeWithError attempts to convert a string to the enum type.
// Returns an error if the string is not recognized.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, ok := n.Lookup(raw); ok {
		return value, nil
	}

	var zero T
	return zero, fmt.Errorf("invalid value: %s", raw)
}
