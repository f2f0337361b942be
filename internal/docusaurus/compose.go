package docusaurus

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// Plugin and preset names understood by the site build.
const (
	CodePluginName    = "docusaurus-plugin-moonwave"
	SearchPluginName  = "docusaurus-lunr-search"
	ClassicPresetName = "@docusaurus/preset-classic"
)

// Root defaults applied before user overrides.
const (
	DefaultTitle                 = "You need to configure your title"
	DefaultOnBrokenLinks         = "throw"
	DefaultOnBrokenMarkdownLinks = "warn"
	DefaultFavicon               = "img/favicon.ico"
	DefaultBaseURL               = "/"
	DefaultURL                   = "localhost"
	DefaultFooterStyle           = "dark"
)

// ExistsFunc reports whether an absolute path exists. Errors abort composition.
type ExistsFunc func(absPath string) (bool, error)

// YearFunc returns the current calendar year.
type YearFunc func() int

// CurrentYear reads the year from the wall clock.
func CurrentYear() int { return time.Now().Year() }

// Composer builds a SiteConfig from code paths, feature flags and user
// configuration. It holds no state between calls.
type Composer struct {
	baseDir string
	exists  ExistsFunc
	year    YearFunc
}

// NewComposer creates a Composer resolving code paths against baseDir.
func NewComposer(baseDir string, exists ExistsFunc, year YearFunc) *Composer {
	if year == nil {
		year = CurrentYear
	}
	return &Composer{baseDir: baseDir, exists: exists, year: year}
}

// Compose produces the full site configuration. The only error it returns
// is one raised by the exists collaborator, passed through unchanged.
func (c *Composer) Compose(codePaths []string, features Features, user UserConfig) (*SiteConfig, error) {
	validCodePaths, err := c.validCodePaths(codePaths)
	if err != nil {
		return nil, err
	}

	repo := user.repoURL()
	branch := user.sourceBranch()
	site := user.Docusaurus

	cfg := &SiteConfig{
		Title:                 site.Title.UnwrapOr(DefaultTitle),
		OnBrokenLinks:         site.OnBrokenLinks.UnwrapOr(DefaultOnBrokenLinks),
		OnBrokenMarkdownLinks: site.OnBrokenMarkdownLinks.UnwrapOr(DefaultOnBrokenMarkdownLinks),
		Favicon:               site.Favicon.UnwrapOr(DefaultFavicon),
		BaseURL:               site.BaseURL.UnwrapOr(DefaultBaseURL),
		URL:                   site.URL.UnwrapOr(DefaultURL),
		OrganizationName:      site.OrganizationName,
		ProjectName:           site.ProjectName,
		Tagline:               site.Tagline,
		Extra:                 maps.Clone(site.Extra),
		ThemeConfig: ThemeConfig{
			HideableSidebar: user.Navbar.HideableSidebar.UnwrapOr(true),
			Navbar:          composeNavbar(features, repo, user.Navbar),
			Footer:          c.composeFooter(site.OrganizationName, user.Footer),
		},
		Plugins:        composePlugins(validCodePaths, repo.UnwrapOr(""), branch),
		Presets:        composePresets(features, repo, branch),
		ValidCodePaths: validCodePaths,
	}
	return cfg, nil
}

// validCodePaths resolves each path against the base directory and keeps
// the ones that exist, in input order.
func (c *Composer) validCodePaths(codePaths []string) ([]string, error) {
	valid := make([]string, 0, len(codePaths))
	for _, p := range codePaths {
		abs := filepath.Join(c.baseDir, p)
		ok, err := c.exists(abs)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Debug("Skipping missing code path", logfields.CodePath(abs))
			continue
		}
		valid = append(valid, abs)
	}
	return valid, nil
}

func composePlugins(validCodePaths []string, repo, branch string) []Plugin {
	return []Plugin{
		{
			Name: CodePluginName,
			Options: foundation.Some(map[string]any{
				"code":      validCodePaths,
				"sourceUrl": SourceURL(repo, branch),
			}),
		},
		{Name: SearchPluginName},
	}
}

// composeNavbar assembles the items as docs, blog, API, GitHub, then user items.
func composeNavbar(features Features, repo foundation.Option[string], user NavbarOverrides) Navbar {
	items := make([]NavItem, 0, 4+len(user.Items))
	if features.Enabled(FeatureDocs) {
		items = append(items, NavItem{"type": "doc", "docId": "intro", "position": "left", "label": "Docs"})
	}
	if features.Enabled(FeatureBlog) {
		items = append(items, NavItem{"to": "/blog", "label": "Blog", "position": "left"})
	}
	items = append(items, NavItem{"to": "/api/", "label": "API", "position": "left"})
	if r, ok := repo.Get(); ok {
		items = append(items, NavItem{"href": r, "label": "GitHub", "position": "right"})
	}
	items = append(items, user.Items...)

	return Navbar{
		HideableSidebar: user.HideableSidebar,
		Title:           user.Title,
		Logo:            user.Logo,
		Items:           items,
		Extra:           maps.Clone(user.Extra),
	}
}

func (c *Composer) composeFooter(org foundation.Option[string], user FooterOverrides) Footer {
	return Footer{
		Style:     user.Style.UnwrapOr(DefaultFooterStyle),
		Copyright: user.Copyright.UnwrapOr(defaultCopyright(c.year(), org)),
		Links:     user.Links,
		Logo:      user.Logo,
		Extra:     maps.Clone(user.Extra),
	}
}

func defaultCopyright(year int, org foundation.Option[string]) string {
	if name, ok := org.Filter(nonEmpty).Get(); ok {
		return fmt.Sprintf("Copyright © %d %s. Built with Moonwave and Docusaurus.", year, name)
	}
	return fmt.Sprintf("Copyright © %d. Built with Moonwave and Docusaurus.", year)
}

func composePresets(features Features, repo foundation.Option[string], branch string) []Preset {
	docs := foundation.EnabledIf(features.Enabled(FeatureDocs), func() DocsOptions {
		return DocsOptions{
			EditURL:            EditURL(repo, branch, "docs"),
			SidebarCollapsible: true,
		}
	})
	blog := foundation.EnabledIf(features.Enabled(FeatureBlog), func() BlogOptions {
		return BlogOptions{
			EditURL:         EditURL(repo, branch, "blog"),
			ShowReadingTime: true,
		}
	})

	return []Preset{{
		Name: ClassicPresetName,
		Options: ClassicOptions{
			Docs: docs,
			Blog: blog,
			Pages: PagesOptions{
				Path:    "pages",
				Exclude: slices.Clone(pagesExclude),
			},
		},
	}}
}

// pagesExclude skips page files whose name starts with an underscore.
var pagesExclude = []string{"_*.*"}
