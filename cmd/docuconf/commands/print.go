package commands

import (
	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// PrintCmd implements the 'print' command.
type PrintCmd struct {
	ProjectFlags `embed:""`
}

func (p *PrintCmd) Run(g *Global, root *CLI) error {
	s, err := compose(root, p.ProjectFlags)
	if err != nil {
		return err
	}
	data, err := docusaurus.Render(s.site, s.format)
	if err != nil {
		return ferrors.ComposeError("failed to render Docusaurus config").
			WithCause(err).
			WithContext(logfields.KeyFormat, string(s.format)).
			Build()
	}
	if _, err := g.Stdout.Write(data); err != nil {
		return ferrors.RuntimeError("failed to write to stdout").WithCause(err).Build()
	}
	return nil
}
