package commands

import (
	"errors"
	"log/slog"
	"maps"

	"github.com/samber/lo"

	"git.home.luguber.info/inful/docuconf/internal/config"
	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	"git.home.luguber.info/inful/docuconf/internal/foundation"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/git"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
	"git.home.luguber.info/inful/docuconf/internal/workspace"
)

// ProjectFlags override the [docuconf] table of the project file.
type ProjectFlags struct {
	Code    []string `help:"Code paths relative to the project root (repeatable)" placeholder:"PATH"`
	Out     string   `short:"o" help:"Output directory for the generated config" placeholder:"DIR"`
	Format  string   `short:"f" help:"Output format: js, json or yaml"`
	Enable  []string `help:"Enable a section regardless of folder detection (docs, blog)" placeholder:"FEATURE"`
	Disable []string `help:"Disable a section regardless of folder detection (docs, blog)" placeholder:"FEATURE"`
	NoGit   bool     `name:"no-git" help:"Do not read the repository URL and branch from git"`
}

// layer converts the flags to a project layer; unset flags stay empty.
func (f ProjectFlags) layer() config.Project {
	p := config.Project{
		CodePaths: f.Code,
		OutDir:    f.Out,
		Format:    f.Format,
	}
	if len(f.Enable)+len(f.Disable) > 0 {
		p.Features = lo.SliceToMap(f.Enable, func(name string) (string, bool) {
			return docusaurus.FeatureKey(name), true
		})
		maps.Copy(p.Features, lo.SliceToMap(f.Disable, func(name string) (string, bool) {
			return docusaurus.FeatureKey(name), false
		}))
	}
	if f.NoGit {
		detect := false
		p.DetectGit = &detect
	}
	return p
}

// session is one resolved run of the compose pipeline.
type session struct {
	ws         *workspace.Workspace
	configPath string
	project    config.Project
	format     docusaurus.Format
	site       *docusaurus.SiteConfig
}

// configPath returns the project file selected by the global flags.
func configPath(root *CLI, ws *workspace.Workspace) string {
	if root.Config != "" {
		return ws.Resolve(root.Config)
	}
	return ws.Resolve(config.DefaultFileName)
}

// compose loads the project file, layers flags over it, fills repository
// details from git, detects sections and composes the site configuration.
func compose(root *CLI, flags ProjectFlags) (*session, error) {
	ws, err := workspace.New(root.Root)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to open project root").WithCause(err).Build()
	}
	s := &session{ws: ws, configPath: configPath(root, ws)}

	file, err := config.Load(s.configPath)
	if err != nil {
		return nil, err
	}
	if s.project, err = config.ResolveProject(file.Project, flags.layer()); err != nil {
		return nil, err
	}
	if s.format, err = s.project.OutputFormat(); err != nil {
		return nil, err
	}

	user := file.User
	if s.project.GitDetectionEnabled() {
		user = withGitRemote(ws.Root, user)
	}

	detected, err := docusaurus.DetectFeatures(ws.Root, ws.DirExists)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to detect documentation folders").
			WithCause(err).
			WithContext(logfields.KeyPath, ws.Root).
			Build()
	}
	features := detected.Merge(docusaurus.ParseFeatures(s.project.Features))
	slog.Debug("Resolved features", slog.String("enabled", features.String()))

	composer := docusaurus.NewComposer(ws.Root, ws.Exists, docusaurus.CurrentYear)
	s.site, err = composer.Compose(s.project.CodePaths, features, user)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to inspect code paths").
			WithCause(err).
			WithContext(logfields.KeyPath, ws.Root).
			Build()
	}
	return s, nil
}

// withGitRemote fills an absent repository URL or branch from the local
// checkout. Detection problems are logged and otherwise ignored.
func withGitRemote(dir string, user docusaurus.UserConfig) docusaurus.UserConfig {
	if user.GitRepoURL.IsSome() && user.GitSourceBranch.IsSome() {
		return user
	}

	remote, err := git.DetectRemote(dir)
	switch {
	case errors.Is(err, git.ErrNotRepository), errors.Is(err, git.ErrNoOrigin):
		slog.Debug("Skipping git detection", logfields.Path(dir), logfields.Error(err))
		return user
	case err != nil:
		slog.Warn("Git detection failed", logfields.Path(dir), logfields.Error(err))
		return user
	}

	user.GitRepoURL = user.GitRepoURL.Or(foundation.Some(remote.URL))
	if remote.Branch != "" {
		user.GitSourceBranch = user.GitSourceBranch.Or(foundation.Some(remote.Branch))
	}
	return user
}

// write persists the composed configuration into the output directory.
func (s *session) write() (string, error) {
	return docusaurus.NewWriter(s.ws.Fs, s.ws.Resolve(s.project.OutDir), s.format).Write(s.site)
}
