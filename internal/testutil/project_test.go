package testutil

import (
	"os"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"
)

func TestProjectBuilder(t *testing.T) {
	pb := NewProject(t).
		WithDirs("lib", "docs").
		WithProjectFile("title = \"x\"\n").
		WithFile("blog/first.md", "# First")

	require.DirExists(t, pb.Path("lib"))
	require.DirExists(t, pb.Path("docs"))
	require.FileExists(t, pb.Path("blog", "first.md"))
	AssertFileContains(t, pb.Path("docuconf.toml"), "title", `"x"`)
}

func TestInitGitRepo(t *testing.T) {
	dir := t.TempDir()
	repo := InitGitRepo(t, dir, "main", "https://example.com/repo.git")

	head, err := repo.Reference(plumbing.HEAD, false)
	require.NoError(t, err)
	require.Equal(t, plumbing.NewBranchReferenceName("main"), head.Target())

	remote, err := repo.Remote("origin")
	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/repo.git"}, remote.Config().URLs)

	_, err = os.Stat(dir + "/.git")
	require.NoError(t, err)
}
