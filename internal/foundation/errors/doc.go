// Package errors provides foundational, type-safe error primitives used across docuconf.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, git, compose, filesystem, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior (never, backoff, user action)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and messages for the command line
//
// Example usage:
//
//	err := errors.WrapError(readErr, errors.CategoryConfig, "read project file").
//		Fatal().
//		WithContext("path", path).
//		Build()
package errors
