package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	"git.home.luguber.info/inful/docuconf/internal/foundation"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// EnvGitRepoURL overrides gitRepoUrl from the project file when set.
const EnvGitRepoURL = "DOCUCONF_GIT_REPO_URL"

// envFiles are tried in order next to the project file; the first one found wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads variables from the first .env file found in dir.
// Variables already present in the process environment are not overwritten.
func loadEnvFile(dir string) error {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		err := godotenv.Load(path)
		if err == nil {
			slog.Debug("Loaded environment variables", logfields.File(path))
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// applyEnvOverrides lets the environment override selected user settings.
func applyEnvOverrides(user *docusaurus.UserConfig) {
	if v := os.Getenv(EnvGitRepoURL); v != "" {
		user.GitRepoURL = foundation.Some(v)
	}
}
