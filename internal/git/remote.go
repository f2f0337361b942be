package git

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// OriginName is the remote whose URL is reported.
const OriginName = "origin"

// Remote describes the repository a project lives in.
type Remote struct {
	// URL is the browsable https address of origin, without a .git suffix.
	URL string
	// Branch is the short name of the checked out branch. It is empty when
	// HEAD is detached.
	Branch string
}

// DetectRemote inspects the repository containing dir. Parent directories
// are searched for the .git directory.
func DetectRemote(dir string) (Remote, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Remote{}, ErrNotRepository
	}
	if err != nil {
		return Remote{}, classify(err, "open", dir)
	}

	origin, err := repo.Remote(OriginName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return Remote{}, ErrNoOrigin
	}
	if err != nil {
		return Remote{}, classify(err, "remote", dir)
	}
	urls := origin.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return Remote{}, ErrNoOrigin
	}

	remote := Remote{URL: NormalizeRemoteURL(urls[0])}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return Remote{}, classify(err, "head", dir)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		remote.Branch = head.Target().Short()
	}

	slog.Debug("Detected git remote", logfields.Remote(remote.URL), logfields.Branch(remote.Branch), logfields.Path(dir))
	return remote, nil
}

// NormalizeRemoteURL turns a clone URL into the https address of the
// repository's web page. SCP-like SSH addresses (git@host:owner/repo.git)
// and ssh:// URLs are rewritten to https; credentials, ports of SSH URLs,
// trailing slashes and the .git suffix are removed. Strings that cannot be
// parsed are returned with only the suffix trimmed.
func NormalizeRemoteURL(raw string) string {
	s := strings.TrimSpace(raw)

	if host, path, ok := splitSCP(s); ok {
		return trimRepoSuffix("https://" + host + "/" + strings.TrimPrefix(path, "/"))
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return trimRepoSuffix(s)
	}
	switch u.Scheme {
	case "ssh", "git", "git+ssh", "ssh+git":
		u.Scheme = "https"
		u.Host = u.Hostname()
	case "http", "https":
	default:
		return trimRepoSuffix(s)
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return trimRepoSuffix(u.String())
}

// splitSCP recognises user@host:path, which has no scheme.
func splitSCP(s string) (host, path string, ok bool) {
	if strings.Contains(s, "://") {
		return "", "", false
	}
	at := strings.Index(s, "@")
	colon := strings.Index(s, ":")
	if colon < 0 || (at >= 0 && at > colon) {
		return "", "", false
	}
	host = s[:colon]
	if at >= 0 {
		host = s[at+1 : colon]
	}
	if host == "" {
		return "", "", false
	}
	return host, s[colon+1:], true
}

func trimRepoSuffix(s string) string {
	s = strings.TrimRight(s, "/")
	return strings.TrimSuffix(s, ".git")
}
