package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/parseproof"
	"github.com/yasmin-shahed/mouse/render"
)

// runExplain verifies the proof, then prints a word-level diff between a
// line's asserted formula and the formula of its first cited line, so an
// equality or rewrite mismatch is visible at a glance instead of as two
// full formulas side by side. With an explicit <line>, that line is
// explained regardless of whether it passed or failed; without one, the
// first failing line is explained.
func runExplain(cfg *ExplainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Explain.Parse(cc, args)
	if err != nil {
		cfg.Explain.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: explain requires an input file, and optionally a line number", cli.ErrUsage)
	}
	var wantLine int
	haveWantLine := false
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: explain's line argument must be an integer, got %q", cli.ErrUsage, args[1])
		}
		wantLine, haveWantLine = n, true
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
		return err
	}

	var failedLine *checker.Line
	var failedErr error
	onProgress := func(line *checker.Line, err error) {
		if err != nil && failedLine == nil {
			failedLine = line
			failedErr = err
		}
	}
	verifyErr := checker.Verify(res.Context, onProgress)

	target := failedLine
	targetErr := failedErr
	if haveWantLine {
		l, ok := res.Context.Lines[wantLine]
		if !ok {
			return fmt.Errorf("%w: no such line %d", cli.ErrUsage, wantLine)
		}
		target = l
		if failedLine != nil && failedLine.Num == wantLine {
			targetErr = failedErr
		} else {
			targetErr = nil
		}
	} else if verifyErr == nil {
		fmt.Fprintln(cc.Out, "every line verifies; no failing line to explain")
		return nil
	}

	if targetErr != nil {
		fmt.Fprintf(cc.Out, "%s line %d: %s — %v\n", render.Marker(false), target.Num, target.Typ, targetErr)
	} else {
		fmt.Fprintf(cc.Out, "%s line %d: %s\n", render.Marker(true), target.Num, target.Typ)
	}
	if len(target.Just.Args) == 0 {
		if targetErr != nil {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	cited, ok := res.Context.Lines[target.Just.Args[0]]
	if !ok {
		if targetErr != nil {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	fmt.Fprintln(cc.Out, render.FormulaDiff(cited.Typ.String(), target.Typ.String()))
	if targetErr != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}
