package commands

import "fmt"

// ComposeCmd implements the 'compose' command.
type ComposeCmd struct {
	ProjectFlags `embed:""`
}

func (c *ComposeCmd) Run(g *Global, root *CLI) error {
	s, err := compose(root, c.ProjectFlags)
	if err != nil {
		return err
	}
	path, err := s.write()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Stdout, "Wrote %s\n", path)
	return nil
}
