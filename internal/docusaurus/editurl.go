package docusaurus

import (
	"fmt"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
)

// DefaultSourceBranch is used wherever the source branch is referenced and
// the user did not set one.
const DefaultSourceBranch = "master"

func nonEmpty(s string) bool { return s != "" }

// repoURL returns the repository URL when it is set and non-empty.
func (u UserConfig) repoURL() foundation.Option[string] {
	return u.GitRepoURL.Filter(nonEmpty)
}

// sourceBranch returns the configured branch or DefaultSourceBranch.
func (u UserConfig) sourceBranch() string {
	return u.GitSourceBranch.Filter(nonEmpty).UnwrapOr(DefaultSourceBranch)
}

// EditURL returns the edit link base for a content section
// (e.g. https://github.com/org/repo/edit/main/docs/), or None when there is
// no repository to link to.
func EditURL(repo foundation.Option[string], branch, section string) foundation.Option[string] {
	return foundation.MapOption(repo.Filter(nonEmpty), func(r string) string {
		return fmt.Sprintf("%s/edit/%s/%s/", r, branch, section)
	})
}

// SourceURL returns the source browsing URL template for the code plugin.
// It is always built; with an empty repo it yields "/blob/<branch>", which
// the plugin treats as inert.
func SourceURL(repo, branch string) string {
	return fmt.Sprintf("%s/blob/%s", repo, branch)
}
