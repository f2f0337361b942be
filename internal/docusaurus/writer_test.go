package docusaurus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
)

func TestWriter_WritesJSModule(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/project/.docuconf", FormatJS)

	path, err := w.Write(fullSiteConfig(t))
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/project/.docuconf", "docusaurus.config.js"), path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "module.exports = "))
}

func TestWriter_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/out", FormatYAML)
	require.NoError(t, afero.WriteFile(fs, w.Path(), []byte("stale"), 0o644))

	_, err := w.Write(fullSiteConfig(t))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, w.Path())
	require.NoError(t, err)
	require.NotContains(t, string(data), "stale")
	require.Contains(t, string(data), "title: My Lib")
}

func TestWriter_ReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriter(fs, "/out", FormatJS)

	_, err := w.Write(fullSiteConfig(t))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
	require.True(t, errors.Is(err, os.ErrPermission))
}

func TestWriter_RenderFailure(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs(), "/out", Format("toml"))

	_, err := w.Write(&SiteConfig{})
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryCompose))
}
