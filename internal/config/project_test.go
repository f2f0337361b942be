package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveProject_Defaults(t *testing.T) {
	p, err := ResolveProject()
	require.NoError(t, err)
	require.Equal(t, []string{"lib"}, p.CodePaths)
	require.Equal(t, ".docuconf", p.OutDir)
	require.Equal(t, "js", p.Format)
	require.True(t, p.GitDetectionEnabled())
}

func TestResolveProject_Layering(t *testing.T) {
	file := Project{
		CodePaths: []string{"src"},
		Format:    "yaml",
		Features:  map[string]bool{"docs": true, "blog": true},
		DetectGit: boolPtr(false),
	}
	flags := Project{
		OutDir:    "build",
		Features:  map[string]bool{"blog": false},
		DetectGit: boolPtr(true),
	}

	p, err := ResolveProject(file, flags)
	require.NoError(t, err)
	require.Equal(t, []string{"src"}, p.CodePaths, "empty flag values keep file values")
	require.Equal(t, "build", p.OutDir)
	require.Equal(t, "yaml", p.Format)
	require.Equal(t, map[string]bool{"docs": true, "blog": false}, p.Features)
	require.True(t, p.GitDetectionEnabled())
	require.Equal(t, map[string]bool{"docs": true, "blog": true}, file.Features, "layers are not mutated")
}

func TestResolveProject_ExplicitFalseDetectGit(t *testing.T) {
	p, err := ResolveProject(Project{DetectGit: boolPtr(false)})
	require.NoError(t, err)
	require.False(t, p.GitDetectionEnabled())
}

func TestProject_OutputFormat(t *testing.T) {
	f, err := Project{Format: "YML"}.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, docusaurus.FormatYAML, f)

	_, err = Project{Format: "xml"}.OutputFormat()
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestProjectFromMap_CaseVariantFeatures(t *testing.T) {
	p := projectFromMap(map[string]any{
		"features": map[string]any{"docs": true, "Docs": false, " BLOG ": true},
	})
	require.Equal(t, map[string]bool{"docs": false, "blog": true}, p.Features)
}
