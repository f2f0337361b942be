package git

import (
	"errors"

	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
)

// ErrNotRepository is returned when no git repository contains the directory.
var ErrNotRepository = errors.New("not a git repository")

// ErrNoOrigin is returned when the repository has no usable origin remote.
var ErrNoOrigin = errors.New("repository has no origin remote")

// classify wraps go-git failures into git-scoped ClassifiedErrors.
// Sentinel errors stay reachable through errors.Is.
func classify(err error, op, dir string) error {
	if err == nil {
		return nil
	}
	if _, ok := ferrors.AsClassified(err); ok {
		return err
	}
	return ferrors.WrapError(err, ferrors.CategoryGit, "git operation failed").
		WithContext("op", op).
		WithContext("dir", dir).
		Build()
}
