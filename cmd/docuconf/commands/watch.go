package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docuconf/internal/docusaurus"
	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	ProjectFlags `embed:""`

	Debounce time.Duration `help:"Time to wait for changes to settle" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	var first *session
	recompose := func(context.Context) error {
		s, err := compose(root, w.ProjectFlags)
		if err != nil {
			return err
		}
		path, err := s.write()
		if err != nil {
			return err
		}
		if first == nil {
			first = s
		}
		_, _ = fmt.Fprintf(g.Stdout, "Wrote %s\n", path)
		return nil
	}
	if err := recompose(ctx); err != nil {
		return err
	}

	watcher, err := watch.New(first.configPath, recompose, watchedPaths(first)...)
	if err != nil {
		return ferrors.RuntimeError("failed to start watcher").WithCause(err).Build()
	}
	return watcher.WithDebounce(w.Debounce).Run(ctx)
}

// watchedPaths lists the section folders and the code paths resolved at
// start-up. Code paths added to the project file later are not watched
// until the command restarts.
func watchedPaths(s *session) []string {
	paths := make([]string, 0, len(docusaurus.AllFeatures)+len(s.project.CodePaths))
	for _, f := range docusaurus.AllFeatures {
		paths = append(paths, s.ws.Resolve(string(f)))
	}
	for _, p := range s.project.CodePaths {
		paths = append(paths, s.ws.Resolve(p))
	}
	return paths
}
