// Package docusaurus composes the Docusaurus site configuration for a code
// documentation site.
//
// Composition runs in a fixed order: code paths are resolved and filtered
// through an injected existence check, computed sections (plugins, navbar,
// footer, presets) are derived from feature flags and the repository URL,
// and user overrides replace defaults key by key. Overrides are shallow: a
// user-provided footer link list replaces the default list wholesale. The
// one exception is navbar items, which are appended after the computed
// entries.
//
// Sections that can be switched off are modelled explicitly. A disabled
// docs or blog preset is a foundation.Toggle and serialises as false; a
// missing edit URL is a foundation.Option and is left out of the output.
package docusaurus
