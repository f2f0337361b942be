package config

import (
	"log/slog"

	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	"git.home.luguber.info/inful/docuconf/internal/foundation"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// Recognised top-level keys of the project file.
const (
	keyGitRepoURL      = "gitRepoUrl"
	keyGitSourceBranch = "gitSourceBranch"
	keyDocusaurus      = "docusaurus"
	keyNavbar          = "navbar"
	keyFooter          = "footer"
)

// UserConfigFromMap extracts the user configuration from a decoded project
// file. It never fails: missing or malformed fields are left absent so the
// composer's defaults apply.
func UserConfigFromMap(raw map[string]any) docusaurus.UserConfig {
	user := docusaurus.UserConfig{
		GitRepoURL:      stringField(raw, keyGitRepoURL, keyGitRepoURL),
		GitSourceBranch: stringField(raw, keyGitSourceBranch, keyGitSourceBranch),
	}

	if site, ok := tableField(raw, keyDocusaurus, keyDocusaurus).Get(); ok {
		user.Docusaurus = siteOverrides(site)
	}
	if navbar, ok := tableField(raw, keyNavbar, keyNavbar).Get(); ok {
		user.Navbar = navbarOverrides(navbar)
	}
	if footer, ok := tableField(raw, keyFooter, keyFooter).Get(); ok {
		user.Footer = footerOverrides(footer)
	}
	return user
}

var siteStringKeys = []string{
	"title", "url", "baseUrl", "favicon", "onBrokenLinks",
	"onBrokenMarkdownLinks", "organizationName", "projectName", "tagline",
}

func siteOverrides(m map[string]any) docusaurus.SiteOverrides {
	field := func(key string) foundation.Option[string] {
		return stringField(m, key, keyDocusaurus+"."+key)
	}
	return docusaurus.SiteOverrides{
		Title:                 field("title"),
		URL:                   field("url"),
		BaseURL:               field("baseUrl"),
		Favicon:               field("favicon"),
		OnBrokenLinks:         field("onBrokenLinks"),
		OnBrokenMarkdownLinks: field("onBrokenMarkdownLinks"),
		OrganizationName:      field("organizationName"),
		ProjectName:           field("projectName"),
		Tagline:               field("tagline"),
		Extra:                 extraFields(m, siteStringKeys...),
	}
}

func navbarOverrides(m map[string]any) docusaurus.NavbarOverrides {
	out := docusaurus.NavbarOverrides{
		HideableSidebar: boolField(m, "hideableSidebar", "navbar.hideableSidebar"),
		Title:           stringField(m, "title", "navbar.title"),
		Logo:            tableField(m, "logo", "navbar.logo"),
		Extra:           extraFields(m, "hideableSidebar", "title", "logo", "items"),
	}
	for _, item := range arrayField(m, "items", "navbar.items").UnwrapOr(nil) {
		entry, ok := item.(map[string]any)
		if !ok {
			slog.Debug("Skipping navbar item that is not a table", logfields.Key("navbar.items"))
			continue
		}
		out.Items = append(out.Items, docusaurus.NavItem(entry))
	}
	return out
}

func footerOverrides(m map[string]any) docusaurus.FooterOverrides {
	return docusaurus.FooterOverrides{
		Style:     stringField(m, "style", "footer.style"),
		Copyright: stringField(m, "copyright", "footer.copyright"),
		Links:     arrayField(m, "links", "footer.links"),
		Logo:      tableField(m, "logo", "footer.logo"),
		Extra:     extraFields(m, "style", "copyright", "links", "logo"),
	}
}
