package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// DefaultFileName is the project file looked up in the project root.
const DefaultFileName = "docuconf.toml"

// File is a loaded project file.
type File struct {
	// Path is the file that was read, or empty when none exists.
	Path    string
	Project Project
	User    docusaurus.UserConfig
}

// Found reports whether a project file was read.
func (f *File) Found() bool {
	return f.Path != ""
}

// Load reads the project file at path. A missing file is not an error: it
// yields an empty user configuration so every default applies. Environment
// variables in the file are expanded after loading any .env file beside it.
func Load(path string) (*File, error) {
	if err := loadEnvFile(filepath.Dir(path)); err != nil {
		slog.Warn("Failed to load .env file", logfields.Error(err))
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No project file found, using defaults", logfields.File(path))
		file := &File{}
		applyEnvOverrides(&file.User)
		return file, nil
	}
	if err != nil {
		return nil, ferrors.ConfigError("failed to read project file").
			WithCause(err).
			WithContext(logfields.KeyFile, path).
			Build()
	}

	raw, err := decode(path, []byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, ferrors.ConfigError("failed to parse project file").
			WithCause(err).
			WithContext(logfields.KeyFile, path).
			Build()
	}

	file := &File{
		Path: path,
		User: UserConfigFromMap(raw),
	}
	if table, ok := tableField(raw, keyProject, keyProject).Get(); ok {
		file.Project = projectFromMap(table)
	}
	applyEnvOverrides(&file.User)

	slog.Debug("Loaded project file", logfields.File(path))
	return file, nil
}

// decode parses TOML or YAML based on the file extension. TOML is assumed
// for anything that is not .yaml/.yml.
func decode(path string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			raw = map[string]any{}
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}
