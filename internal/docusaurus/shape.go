package docusaurus

import (
	"maps"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
)

// computedRootKeys are owned by the composer; passthrough keys with these
// names are dropped.
var computedRootKeys = map[string]struct{}{
	"themeConfig": {},
	"plugins":     {},
	"presets":     {},
}

// ToMap returns the configuration in the shape the Docusaurus build loads.
// Passthrough (Extra) keys are applied first so named and computed keys win.
func (c *SiteConfig) ToMap() map[string]any {
	root := map[string]any{}
	for k, v := range c.Extra {
		if _, reserved := computedRootKeys[k]; reserved {
			continue
		}
		root[k] = v
	}

	root["title"] = c.Title
	root["onBrokenLinks"] = c.OnBrokenLinks
	root["onBrokenMarkdownLinks"] = c.OnBrokenMarkdownLinks
	root["favicon"] = c.Favicon
	root["baseUrl"] = c.BaseURL
	root["url"] = c.URL
	setIfSome(root, "organizationName", c.OrganizationName)
	setIfSome(root, "projectName", c.ProjectName)
	setIfSome(root, "tagline", c.Tagline)

	root["themeConfig"] = map[string]any{
		"hideableSidebar": c.ThemeConfig.HideableSidebar,
		"navbar":          c.ThemeConfig.Navbar.toMap(),
		"footer":          c.ThemeConfig.Footer.toMap(),
	}

	plugins := make([]any, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		plugins = append(plugins, p.wireValue())
	}
	root["plugins"] = plugins

	presets := make([]any, 0, len(c.Presets))
	for _, p := range c.Presets {
		presets = append(presets, []any{p.Name, p.Options.toMap()})
	}
	root["presets"] = presets

	return root
}

func (n Navbar) toMap() map[string]any {
	out := maps.Clone(n.Extra)
	if out == nil {
		out = map[string]any{}
	}
	setIfSome(out, "hideableSidebar", n.HideableSidebar)
	setIfSome(out, "title", n.Title)
	setIfSome(out, "logo", n.Logo)

	items := make([]any, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, map[string]any(item))
	}
	out["items"] = items
	return out
}

func (f Footer) toMap() map[string]any {
	out := maps.Clone(f.Extra)
	if out == nil {
		out = map[string]any{}
	}
	out["style"] = f.Style
	out["copyright"] = f.Copyright
	setIfSome(out, "links", f.Links)
	setIfSome(out, "logo", f.Logo)
	return out
}

func (p Plugin) wireValue() any {
	if opts, ok := p.Options.Get(); ok {
		return []any{p.Name, opts}
	}
	return p.Name
}

func (o ClassicOptions) toMap() map[string]any {
	return map[string]any{
		"docs": foundation.ToggleValue(o.Docs, func(d DocsOptions) any {
			out := map[string]any{"sidebarCollapsible": d.SidebarCollapsible}
			setIfSome(out, "editUrl", d.EditURL)
			return out
		}),
		"blog": foundation.ToggleValue(o.Blog, func(b BlogOptions) any {
			out := map[string]any{"showReadingTime": b.ShowReadingTime}
			setIfSome(out, "editUrl", b.EditURL)
			return out
		}),
		"pages": map[string]any{
			"path":    o.Pages.Path,
			"exclude": o.Pages.Exclude,
		},
	}
}

// setIfSome writes key only when the option holds a value, so absent
// options stay absent rather than becoming zero values.
func setIfSome[T any](m map[string]any, key string, opt foundation.Option[T]) {
	if v, ok := opt.Get(); ok {
		m[key] = v
	}
}
