package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ProjectBuilder provides a fluent interface for creating test projects.
type ProjectBuilder struct {
	t    *testing.T
	root string
}

// NewProject creates a builder rooted in a fresh temporary directory.
func NewProject(t *testing.T) *ProjectBuilder {
	t.Helper()
	return &ProjectBuilder{t: t, root: t.TempDir()}
}

// WithDirs creates directories relative to the project root.
func (pb *ProjectBuilder) WithDirs(dirs ...string) *ProjectBuilder {
	pb.t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(pb.root, d), 0o750); err != nil {
			pb.t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	return pb
}

// WithFile writes a file relative to the project root.
func (pb *ProjectBuilder) WithFile(name, content string) *ProjectBuilder {
	pb.t.Helper()
	path := filepath.Join(pb.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		pb.t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		pb.t.Fatalf("failed to write %s: %v", name, err)
	}
	return pb
}

// WithProjectFile writes docuconf.toml.
func (pb *ProjectBuilder) WithProjectFile(content string) *ProjectBuilder {
	pb.t.Helper()
	return pb.WithFile("docuconf.toml", content)
}

// WithGitRemote turns the project into a git repository on branch with an
// origin remote.
func (pb *ProjectBuilder) WithGitRemote(branch, originURL string) *ProjectBuilder {
	pb.t.Helper()
	InitGitRepo(pb.t, pb.root, branch, originURL)
	return pb
}

// Root returns the project directory.
func (pb *ProjectBuilder) Root() string {
	return pb.root
}

// Path joins elements onto the project root.
func (pb *ProjectBuilder) Path(elem ...string) string {
	return filepath.Join(append([]string{pb.root}, elem...)...)
}

// AssertFileContains fails the test unless the file exists and contains
// every expected fragment.
func AssertFileContains(t *testing.T, path string, expected ...string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	for _, want := range expected {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %s to contain %q\nactual content:\n%s", path, want, content)
		}
	}
}
