package docusaurus

import "git.home.luguber.info/inful/docuconf/internal/foundation"

// NavItem is a navbar entry. User-supplied items are passed through verbatim.
type NavItem map[string]any

// UserConfig is the user-supplied partial configuration. Every field is optional.
type UserConfig struct {
	GitRepoURL      foundation.Option[string]
	GitSourceBranch foundation.Option[string]
	Docusaurus      SiteOverrides
	Navbar          NavbarOverrides
	Footer          FooterOverrides
}

// SiteOverrides replace root-level defaults key by key.
// Extra carries any other key, passed through to the root object.
type SiteOverrides struct {
	Title                 foundation.Option[string]
	URL                   foundation.Option[string]
	BaseURL               foundation.Option[string]
	Favicon               foundation.Option[string]
	OnBrokenLinks         foundation.Option[string]
	OnBrokenMarkdownLinks foundation.Option[string]
	OrganizationName      foundation.Option[string]
	ProjectName           foundation.Option[string]
	Tagline               foundation.Option[string]
	Extra                 map[string]any
}

// NavbarOverrides customise the navbar. Items are appended after the
// computed entries rather than replacing them.
type NavbarOverrides struct {
	HideableSidebar foundation.Option[bool]
	Title           foundation.Option[string]
	Logo            foundation.Option[map[string]any]
	Items           []NavItem
	Extra           map[string]any
}

// FooterOverrides replace footer defaults key by key.
type FooterOverrides struct {
	Style     foundation.Option[string]
	Copyright foundation.Option[string]
	Links     foundation.Option[[]any]
	Logo      foundation.Option[map[string]any]
	Extra     map[string]any
}

// SiteConfig is the composed Docusaurus configuration.
type SiteConfig struct {
	Title                 string
	OnBrokenLinks         string
	OnBrokenMarkdownLinks string
	Favicon               string
	BaseURL               string
	URL                   string
	OrganizationName      foundation.Option[string]
	ProjectName           foundation.Option[string]
	Tagline               foundation.Option[string]
	Extra                 map[string]any

	ThemeConfig ThemeConfig
	Plugins     []Plugin
	Presets     []Preset

	// ValidCodePaths are the resolved code paths that existed at composition time.
	ValidCodePaths []string
}

// ThemeConfig is the themeConfig section.
type ThemeConfig struct {
	HideableSidebar bool
	Navbar          Navbar
	Footer          Footer
}

// Navbar is the composed navbar.
type Navbar struct {
	// HideableSidebar echoes the user's navbar setting; it is absent unless set.
	HideableSidebar foundation.Option[bool]
	Title           foundation.Option[string]
	Logo            foundation.Option[map[string]any]
	Items           []NavItem
	Extra           map[string]any
}

// Footer is the composed footer.
type Footer struct {
	Style     string
	Copyright string
	Links     foundation.Option[[]any]
	Logo      foundation.Option[map[string]any]
	Extra     map[string]any
}

// Plugin references a Docusaurus plugin. Without options it serialises as
// the bare plugin name.
type Plugin struct {
	Name    string
	Options foundation.Option[map[string]any]
}

// Preset references a preset together with its options.
type Preset struct {
	Name    string
	Options ClassicOptions
}

// ClassicOptions configures @docusaurus/preset-classic.
type ClassicOptions struct {
	Docs  foundation.Toggle[DocsOptions]
	Blog  foundation.Toggle[BlogOptions]
	Pages PagesOptions
}

// DocsOptions configures the docs plugin of the classic preset.
// A None EditURL disables edit links.
type DocsOptions struct {
	EditURL            foundation.Option[string]
	SidebarCollapsible bool
}

// BlogOptions configures the blog plugin of the classic preset.
type BlogOptions struct {
	EditURL         foundation.Option[string]
	ShowReadingTime bool
}

// PagesOptions configures the pages plugin of the classic preset.
type PagesOptions struct {
	Path    string
	Exclude []string
}
