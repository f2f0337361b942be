// Package workspace gives the composer a view of the project directory.
//
// Paths are resolved against the project root and checked on an afero
// filesystem, so production code runs on the OS filesystem while tests use
// an in-memory one.
package workspace
