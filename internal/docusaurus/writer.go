package docusaurus

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// Writer persists rendered configurations into an output directory.
type Writer struct {
	fs     afero.Fs
	outDir string
	format Format
}

// NewWriter creates a Writer targeting outDir on fs.
func NewWriter(fs afero.Fs, outDir string, format Format) *Writer {
	return &Writer{fs: fs, outDir: outDir, format: format}
}

// Path returns the file the writer writes to.
func (w *Writer) Path() string {
	return filepath.Join(w.outDir, w.format.FileName())
}

// Write renders cfg and writes it, returning the written path.
func (w *Writer) Write(cfg *SiteConfig) (string, error) {
	configPath := w.Path()

	data, err := Render(cfg, w.format)
	if err != nil {
		return "", ferrors.ComposeError("failed to render Docusaurus config").
			WithCause(err).
			WithContext(logfields.KeyFormat, string(w.format)).
			Build()
	}
	if err := w.fs.MkdirAll(w.outDir, 0o755); err != nil {
		return "", ferrors.FileSystemError("failed to create output directory").
			WithCause(err).
			WithContext(logfields.KeyPath, w.outDir).
			Build()
	}
	if err := afero.WriteFile(w.fs, configPath, data, 0o644); err != nil {
		return "", ferrors.FileSystemError("failed to write Docusaurus config").
			WithCause(err).
			WithContext(logfields.KeyPath, configPath).
			Build()
	}

	slog.Info("Generated Docusaurus configuration",
		logfields.Path(configPath),
		logfields.Format(string(w.format)),
		logfields.Count(len(cfg.ValidCodePaths)))
	return configPath, nil
}
