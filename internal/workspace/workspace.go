package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// Workspace is a project directory on a filesystem.
type Workspace struct {
	Root string
	Fs   afero.Fs
}

// New returns a workspace rooted at root on the OS filesystem. An empty
// root means the current working directory.
func New(root string) (*Workspace, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}
	slog.Debug("Using workspace", logfields.Path(abs))
	return &Workspace{Root: abs, Fs: afero.NewOsFs()}, nil
}

// NewMem returns a workspace backed by an in-memory filesystem.
func NewMem(root string) *Workspace {
	return &Workspace{Root: filepath.Clean(root), Fs: afero.NewMemMapFs()}
}

// Resolve returns p joined onto the root, or p itself when already absolute.
func (w *Workspace) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(w.Root, p)
}

// Exists reports whether absPath exists. It satisfies docusaurus.ExistsFunc.
func (w *Workspace) Exists(absPath string) (bool, error) {
	return afero.Exists(w.Fs, absPath)
}

// DirExists reports whether absPath exists and is a directory.
func (w *Workspace) DirExists(absPath string) (bool, error) {
	return afero.DirExists(w.Fs, absPath)
}
