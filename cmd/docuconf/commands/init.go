package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docuconf/internal/config"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/workspace"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing project file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	ws, err := workspace.New(root.Root)
	if err != nil {
		return ferrors.FileSystemError("failed to open project root").WithCause(err).Build()
	}
	path := configPath(root, ws)

	_, _ = fmt.Fprintf(g.Stdout, "Writing project file to %s\n", path)
	if err := config.Init(ws.Fs, path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.Stdout, "Initialized successfully")
	return nil
}
