package docusaurus

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
)

const testBase = "/project"

func existsIn(paths ...string) ExistsFunc {
	set := map[string]bool{}
	for _, p := range paths {
		set[filepath.Join(testBase, p)] = true
	}
	return func(p string) (bool, error) { return set[p], nil }
}

func fixedYear(y int) YearFunc { return func() int { return y } }

func newTestComposer(exists ExistsFunc) *Composer {
	return NewComposer(testBase, exists, fixedYear(2024))
}

func navLabels(items []NavItem) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, it["label"])
	}
	return out
}

func TestCompose_DocsOnlyScenario(t *testing.T) {
	c := newTestComposer(existsIn("src"))

	cfg, err := c.Compose([]string{"src"}, Features{FeatureDocs: true, FeatureBlog: false}, UserConfig{})
	require.NoError(t, err)

	require.Equal(t, []NavItem{
		{"type": "doc", "docId": "intro", "position": "left", "label": "Docs"},
		{"to": "/api/", "label": "API", "position": "left"},
	}, cfg.ThemeConfig.Navbar.Items)
	require.False(t, cfg.Presets[0].Options.Blog.IsEnabled())
	require.Equal(t, false, cfg.ToMap()["presets"].([]any)[0].([]any)[1].(map[string]any)["blog"])
	require.Equal(t, []string{filepath.Join(testBase, "src")}, cfg.ValidCodePaths)

	docs, ok := cfg.Presets[0].Options.Docs.Get()
	require.True(t, ok)
	require.True(t, docs.EditURL.IsNone(), "edit links are disabled without a repo URL")
	require.True(t, docs.SidebarCollapsible)
}

func TestCompose_RepoScenario(t *testing.T) {
	c := newTestComposer(existsIn())
	user := UserConfig{
		GitRepoURL:      foundation.Some("https://example.com/r"),
		GitSourceBranch: foundation.Some("main"),
	}

	cfg, err := c.Compose(nil, Features{FeatureDocs: true, FeatureBlog: true}, user)
	require.NoError(t, err)

	docs, ok := cfg.Presets[0].Options.Docs.Get()
	require.True(t, ok)
	require.Equal(t, "https://example.com/r/edit/main/docs/", docs.EditURL.Unwrap())

	blog, ok := cfg.Presets[0].Options.Blog.Get()
	require.True(t, ok)
	require.Equal(t, "https://example.com/r/edit/main/blog/", blog.EditURL.Unwrap())
	require.True(t, blog.ShowReadingTime)

	require.Contains(t, cfg.ThemeConfig.Navbar.Items,
		NavItem{"href": "https://example.com/r", "label": "GitHub", "position": "right"})

	opts := cfg.Plugins[0].Options.Unwrap()
	require.Equal(t, "https://example.com/r/blob/main", opts["sourceUrl"])
}

func TestCompose_UserNavItemsAppended(t *testing.T) {
	c := newTestComposer(existsIn())
	extra := NavItem{"to": "/x", "label": "X", "position": "left"}
	user := UserConfig{
		GitRepoURL: foundation.Some("https://example.com/r"),
		Navbar:     NavbarOverrides{Items: []NavItem{extra}},
	}

	cfg, err := c.Compose(nil, Features{FeatureDocs: true, FeatureBlog: true}, user)
	require.NoError(t, err)

	items := cfg.ThemeConfig.Navbar.Items
	require.Equal(t, []any{"Docs", "Blog", "API", "GitHub", "X"}, navLabels(items))
	require.Equal(t, extra, items[len(items)-1])
}

func TestCompose_NavbarOrderForAllFeatureCombinations(t *testing.T) {
	userItems := []NavItem{{"to": "/a", "label": "A"}, {"to": "/b", "label": "B"}}

	for _, docs := range []bool{false, true} {
		for _, blog := range []bool{false, true} {
			for _, repo := range []foundation.Option[string]{foundation.None[string](), foundation.Some(""), foundation.Some("https://git.example/r")} {
				name := fmt.Sprintf("docs=%v/blog=%v/repo=%v", docs, blog, repo)
				t.Run(name, func(t *testing.T) {
					c := newTestComposer(existsIn())
					user := UserConfig{GitRepoURL: repo, Navbar: NavbarOverrides{Items: userItems}}

					cfg, err := c.Compose(nil, Features{FeatureDocs: docs, FeatureBlog: blog}, user)
					require.NoError(t, err)

					want := []any{}
					if docs {
						want = append(want, "Docs")
					}
					if blog {
						want = append(want, "Blog")
					}
					want = append(want, "API")
					if r, ok := repo.Get(); ok && r != "" {
						want = append(want, "GitHub")
					}
					want = append(want, "A", "B")
					require.Equal(t, want, navLabels(cfg.ThemeConfig.Navbar.Items))

					require.Equal(t, docs, cfg.Presets[0].Options.Docs.IsEnabled())
					require.Equal(t, blog, cfg.Presets[0].Options.Blog.IsEnabled())
				})
			}
		}
	}
}

func TestCompose_MissingFeatureKeysAreDisabled(t *testing.T) {
	c := newTestComposer(existsIn())

	cfg, err := c.Compose(nil, nil, UserConfig{})
	require.NoError(t, err)

	require.Equal(t, []any{"API"}, navLabels(cfg.ThemeConfig.Navbar.Items))
	require.False(t, cfg.Presets[0].Options.Docs.IsEnabled())
	require.False(t, cfg.Presets[0].Options.Blog.IsEnabled())
}

func TestCompose_ValidCodePathsPreserveOrder(t *testing.T) {
	c := newTestComposer(existsIn("lib", "src", "src"))

	cfg, err := c.Compose([]string{"src", "missing", "lib", "src", "gone"}, nil, UserConfig{})
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(testBase, "src"),
		filepath.Join(testBase, "lib"),
		filepath.Join(testBase, "src"),
	}, cfg.ValidCodePaths)
	require.Equal(t, cfg.ValidCodePaths, cfg.Plugins[0].Options.Unwrap()["code"])
}

func TestCompose_EmptyCodePaths(t *testing.T) {
	c := newTestComposer(existsIn())

	cfg, err := c.Compose(nil, nil, UserConfig{})
	require.NoError(t, err)

	require.NotNil(t, cfg.ValidCodePaths)
	require.Empty(t, cfg.ValidCodePaths)
	require.Equal(t, "/blob/master", cfg.Plugins[0].Options.Unwrap()["sourceUrl"])
	require.Equal(t, SearchPluginName, cfg.Plugins[1].Name)
	require.True(t, cfg.Plugins[1].Options.IsNone())
}

func TestCompose_ExistsErrorPropagatesUnchanged(t *testing.T) {
	statErr := &fs.PathError{Op: "stat", Path: "/project/src", Err: fs.ErrPermission}
	calls := 0
	c := newTestComposer(func(string) (bool, error) {
		calls++
		return false, statErr
	})

	cfg, err := c.Compose([]string{"src", "lib"}, nil, UserConfig{})
	require.Nil(t, cfg)
	require.Same(t, statErr, err)
	require.True(t, errors.Is(err, fs.ErrPermission))
	require.Equal(t, 1, calls, "composition aborts at the first failure")
}

func TestCompose_FooterShallowOverride(t *testing.T) {
	c := newTestComposer(existsIn())
	org := SiteOverrides{OrganizationName: foundation.Some("Acme")}

	base, err := c.Compose(nil, nil, UserConfig{Docusaurus: org})
	require.NoError(t, err)
	require.Equal(t, "dark", base.ThemeConfig.Footer.Style)
	require.Equal(t, "Copyright © 2024 Acme. Built with Moonwave and Docusaurus.", base.ThemeConfig.Footer.Copyright)

	light, err := c.Compose(nil, nil, UserConfig{Docusaurus: org, Footer: FooterOverrides{Style: foundation.Some("light")}})
	require.NoError(t, err)
	require.Equal(t, "light", light.ThemeConfig.Footer.Style)
	require.Equal(t, base.ThemeConfig.Footer.Copyright, light.ThemeConfig.Footer.Copyright)
}

func TestCompose_FooterLinksReplacedWholesale(t *testing.T) {
	c := newTestComposer(existsIn())
	links := []any{map[string]any{"title": "Community", "items": []any{map[string]any{"label": "Chat"}}}}

	cfg, err := c.Compose(nil, nil, UserConfig{Footer: FooterOverrides{
		Links:     foundation.Some(links),
		Copyright: foundation.Some("custom"),
	}})
	require.NoError(t, err)

	footer := cfg.ThemeConfig.Footer.toMap()
	require.Equal(t, links, footer["links"])
	require.Equal(t, "custom", footer["copyright"])
	require.Equal(t, "dark", footer["style"])
}

func TestCompose_CopyrightWithoutOrganization(t *testing.T) {
	c := NewComposer(testBase, existsIn(), fixedYear(1999))

	cfg, err := c.Compose(nil, nil, UserConfig{})
	require.NoError(t, err)
	require.Equal(t, "Copyright © 1999. Built with Moonwave and Docusaurus.", cfg.ThemeConfig.Footer.Copyright)
}

func TestCompose_RootDefaultsAndOverrides(t *testing.T) {
	c := newTestComposer(existsIn())

	defaults, err := c.Compose(nil, nil, UserConfig{})
	require.NoError(t, err)
	require.Equal(t, DefaultTitle, defaults.Title)
	require.Equal(t, "throw", defaults.OnBrokenLinks)
	require.Equal(t, "warn", defaults.OnBrokenMarkdownLinks)
	require.Equal(t, "img/favicon.ico", defaults.Favicon)
	require.Equal(t, "/", defaults.BaseURL)
	require.Equal(t, "localhost", defaults.URL)
	require.True(t, defaults.ThemeConfig.HideableSidebar)

	cfg, err := c.Compose(nil, nil, UserConfig{
		Docusaurus: SiteOverrides{
			Title:         foundation.Some("Lib"),
			URL:           foundation.Some("https://lib.dev"),
			OnBrokenLinks: foundation.Some("warn"),
			Extra:         map[string]any{"trailingSlash": false},
		},
		Navbar: NavbarOverrides{HideableSidebar: foundation.Some(false)},
	})
	require.NoError(t, err)
	require.Equal(t, "Lib", cfg.Title)
	require.Equal(t, "https://lib.dev", cfg.URL)
	require.Equal(t, "warn", cfg.OnBrokenLinks)
	require.Equal(t, "/", cfg.BaseURL)
	require.False(t, cfg.ThemeConfig.HideableSidebar)
	require.Equal(t, false, cfg.ToMap()["trailingSlash"])
}

func TestCompose_EmptyBranchFallsBackToDefault(t *testing.T) {
	c := newTestComposer(existsIn())
	user := UserConfig{GitRepoURL: foundation.Some("https://example.com/r"), GitSourceBranch: foundation.Some("")}

	cfg, err := c.Compose(nil, Features{FeatureDocs: true}, user)
	require.NoError(t, err)

	docs, _ := cfg.Presets[0].Options.Docs.Get()
	require.Equal(t, "https://example.com/r/edit/master/docs/", docs.EditURL.Unwrap())
}

func TestCompose_Idempotent(t *testing.T) {
	c := newTestComposer(existsIn("src"))
	user := UserConfig{
		GitRepoURL: foundation.Some("https://example.com/r"),
		Docusaurus: SiteOverrides{OrganizationName: foundation.Some("Acme")},
		Navbar:     NavbarOverrides{Items: []NavItem{{"to": "/x", "label": "X"}}},
	}
	features := Features{FeatureDocs: true, FeatureBlog: true}

	first, err := c.Compose([]string{"src", "lib"}, features, user)
	require.NoError(t, err)
	second, err := c.Compose([]string{"src", "lib"}, features, user)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, first.ToMap(), second.ToMap())
}

func TestCompose_DoesNotAliasUserInput(t *testing.T) {
	c := newTestComposer(existsIn())
	user := UserConfig{Navbar: NavbarOverrides{Items: make([]NavItem, 1, 8)}}
	user.Navbar.Items[0] = NavItem{"label": "X"}

	cfg, err := c.Compose(nil, Features{FeatureDocs: true}, user)
	require.NoError(t, err)

	cfg.ThemeConfig.Navbar.Items[0] = NavItem{"label": "changed"}
	require.Equal(t, NavItem{"label": "X"}, user.Navbar.Items[0])
	require.Len(t, user.Navbar.Items, 1)
}
