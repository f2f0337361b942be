package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	ferrors "git.home.luguber.info/inful/docuconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docuconf/internal/version"
)

// Global carries state shared by every command.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Project file path (default: <root>/docuconf.toml)" type:"path"`
	Root    string           `short:"r" help:"Project root directory (default: current directory)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Compose ComposeCmd `cmd:"" default:"1" help:"Compose the Docusaurus config and write it to the output directory"`
	Print   PrintCmd   `cmd:"" help:"Compose the Docusaurus config and print it to stdout"`
	Watch   WatchCmd   `cmd:"" help:"Compose, then recompose when the project file, docs/, blog/ or a code path appears, changes or disappears"`
	Init    InitCmd    `cmd:"" help:"Write an example project file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	w := g.Stderr
	if w == nil {
		w = os.Stderr
	}
	g.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// Execute parses args, runs the selected command and returns the process
// exit code. Failures are reported on stderr with a code derived from the
// error category.
func Execute(args []string, stdout, stderr io.Writer, options ...kong.Option) int {
	cli := &CLI{}
	global := &Global{Logger: slog.Default(), Stdout: stdout, Stderr: stderr}
	options = append([]kong.Option{
		kong.Bind(global),
		kong.Name("docuconf"),
		kong.Description("Compose Docusaurus site configuration for Moonwave-style API docs."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}, options...)

	parser, err := kong.New(cli, options...)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 10
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if err := kctx.Run(cli); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).Report(stderr, err)
	}
	return 0
}
