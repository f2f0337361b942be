package testutil

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// InitGitRepo initializes a repository in dir whose HEAD points at branch.
// Each origin URL is registered on the origin remote; none leaves the
// repository without remotes.
func InitGitRepo(t *testing.T, dir, branch string, origin ...string) *git.Repository {
	t.Helper()

	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}

	if len(origin) > 0 {
		if _, err := repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: origin}); err != nil {
			t.Fatalf("failed to create origin remote: %v", err)
		}
	}
	return repo
}
