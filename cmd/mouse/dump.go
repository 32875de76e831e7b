package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/parseproof"
	"github.com/yasmin-shahed/mouse/render"
)

func runDump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump requires one input file", cli.ErrUsage)
	}

	src, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	res, err := parseproof.Parse(string(src))
	if err != nil {
		return err
	}
	// Verify silently; a failing line still has everything checked up to
	// it dumped, so partial progress is visible either way.
	checker.Verify(res.Context, nil)

	out, err := render.DumpContext(res.Context)
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, out)
	return nil
}
