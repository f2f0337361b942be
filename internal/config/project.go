package config

import (
	"fmt"
	"maps"

	"dario.cat/mergo"

	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
)

// keyProject is the table holding docuconf's own settings.
const keyProject = "docuconf"

// Project holds docuconf's own settings: where code lives, where output
// goes and which sections to enable. It is layered from defaults, the
// [docuconf] table of the project file and command-line flags. Features
// lists explicit toggles; features not listed fall back to folder detection.
type Project struct {
	CodePaths []string
	OutDir    string
	Format    string
	Features  map[string]bool
	DetectGit *bool
}

// DefaultProject returns the built-in settings.
func DefaultProject() Project {
	return Project{
		CodePaths: []string{"lib"},
		OutDir:    ".docuconf",
		Format:    string(docusaurus.FormatJS),
	}
}

// GitDetectionEnabled reports whether the repository URL and branch may be
// read from the local git checkout. It is on unless switched off.
func (p Project) GitDetectionEnabled() bool {
	return p.DetectGit == nil || *p.DetectGit
}

// OutputFormat parses Format.
func (p Project) OutputFormat() (docusaurus.Format, error) {
	f, err := docusaurus.ParseFormat(p.Format)
	if err != nil {
		return "", ferrors.ValidationError(fmt.Sprintf("unsupported output format %q", p.Format)).
			WithCause(err).
			Build()
	}
	return f, nil
}

// ResolveProject layers each non-empty field of layers, in order, over the
// defaults. Feature maps are merged key by key; an explicit DetectGit wins
// whatever its value.
func ResolveProject(layers ...Project) (Project, error) {
	resolved := DefaultProject()
	for _, layer := range layers {
		layer.Features = maps.Clone(layer.Features)
		if err := mergo.Merge(&resolved, layer, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return Project{}, ferrors.InternalError("failed to merge project settings").WithCause(err).Build()
		}
	}
	return resolved, nil
}

func projectFromMap(m map[string]any) Project {
	p := Project{
		CodePaths: stringsField(m, "code", keyProject+".code"),
		OutDir:    stringField(m, "outDir", keyProject+".outDir").UnwrapOr(""),
		Format:    stringField(m, "format", keyProject+".format").UnwrapOr(""),
	}
	if detect, ok := boolField(m, "detectGit", keyProject+".detectGit").Get(); ok {
		p.DetectGit = &detect
	}
	if table, ok := tableField(m, "features", keyProject+".features").Get(); ok {
		p.Features = make(map[string]bool, len(table))
		for name := range table {
			enabled, ok := boolField(table, name, keyProject+".features."+name).Get()
			if !ok {
				continue
			}
			setFeature(p.Features, name, enabled)
		}
	}
	return p
}

// setFeature records a toggle under its canonical name. Names that select
// the same feature with different values leave it disabled.
func setFeature(features map[string]bool, name string, enabled bool) {
	key := docusaurus.FeatureKey(name)
	if prev, seen := features[key]; seen {
		enabled = prev && enabled
	}
	features[key] = enabled
}
