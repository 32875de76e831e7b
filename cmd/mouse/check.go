package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/obligation"
	"github.com/yasmin-shahed/mouse/parseproof"
	"github.com/yasmin-shahed/mouse/render"
)

func runCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if cfg.Check != nil {
		var err error
		args, err = cfg.Check.Parse(cc, args)
		if err != nil {
			cfg.Check.Usage(cc, err)
			return cli.ExitCodeErr(1)
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires one input file", cli.ErrUsage)
	}
	if err := cfg.applyColor(cc.Out); err != nil {
		return err
	}

	src, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	res, err := parseproof.Parse(string(src))
	if err != nil {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}

	onProgress := func(line *checker.Line, err error) {
		fmt.Fprintln(cc.Out, render.Line(line.Num, line.Typ, err))
	}
	if err := checker.Verify(res.Context, onProgress); err != nil {
		return cli.ExitCodeErr(1)
	}

	sequents, err := obligation.Discharge(res.Context, res.Obligations)
	if err != nil {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}
	for _, s := range sequents {
		fmt.Fprintf(cc.Out, "%s %s\n", render.Marker(true), s)
	}
	return nil
}
