package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/scott-cotton/cli"

	"github.com/yasmin-shahed/mouse/tracedbg"
)

// MainConfig holds the options shared by every subcommand.
type MainConfig struct {
	ColorMode string `cli:"name=color desc='colorize output: auto, always, never' default=auto"`
	Verbose   bool   `cli:"name=v aliases=debug desc='enable debug tracing (MOUSE_DEBUG_* env vars do the same, per-subsystem)'"`
	Out       string

	CloseOut func() error
	Main     *cli.Command
}

// applyColor sets the package-global color.NoColor for this invocation
// from -color's three settings; "auto" colors only when w is a terminal.
func (cfg *MainConfig) applyColor(w io.Writer) error {
	switch cfg.ColorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		f, ok := w.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	default:
		return fmt.Errorf("%w: -color must be one of auto, always, never, got %q", cli.ErrUsage, cfg.ColorMode)
	}
	if cfg.Verbose {
		tracedbg.EnableAll()
	}
	return nil
}

// outOpt implements -o: open the named file for writing and redirect
// cc.Out to it, or leave cc.Out as stdout when the path is "-".
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ExplainConfig struct {
	*MainConfig
	Explain *cli.Command
}

// readInput reads path, or cc.In when path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
