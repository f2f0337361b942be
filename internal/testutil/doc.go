// Package testutil provides shared helpers for tests: a fluent builder for
// throwaway project directories and git repository setup.
package testutil
