package config

import (
	"fmt"

	"github.com/spf13/afero"

	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

const exampleProjectFile = `# docuconf project file.
# Every key is optional; remove what you do not need.

# Repository used for the GitHub navbar link, edit links and source links.
# Detected from the local git checkout when omitted.
gitRepoUrl = "https://github.com/example/project"
gitSourceBranch = "main"

[docuconf]
code = ["lib"]
outDir = ".docuconf"
format = "js"
# Explicit toggles; otherwise enabled when docs/ or blog/ exists.
# features = { docs = true, blog = false }

[docusaurus]
title = "Example Project"
organizationName = "example"
projectName = "project"
url = "https://example.github.io"
baseUrl = "/project/"

[navbar]
hideableSidebar = true

# [[navbar.items]]
# to = "/changelog"
# label = "Changelog"
# position = "left"

[footer]
style = "dark"
`

// Init writes an example project file to path on fsys. An existing file is
// only replaced when force is set.
func Init(fsys afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return ferrors.FileSystemError("failed to stat project file").
			WithCause(err).
			WithContext(logfields.KeyFile, path).
			Build()
	}
	if exists && !force {
		return ferrors.ValidationError(fmt.Sprintf("project file already exists: %s (use --force to overwrite)", path)).
			WithContext(logfields.KeyFile, path).
			Build()
	}

	if err := afero.WriteFile(fsys, path, []byte(exampleProjectFile), 0o644); err != nil {
		return ferrors.FileSystemError("failed to write project file").
			WithCause(err).
			WithContext(logfields.KeyFile, path).
			Build()
	}
	return nil
}
