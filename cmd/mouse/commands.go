package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// MainCommand builds the mouse root command. Bare invocation ("mouse
// proof.txt") runs check directly; "mouse check ...", "mouse dump ..."
// and "mouse explain ..." dispatch to the named subcommand.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "mouse").
		WithSynopsis("mouse [opts] <file> | mouse <command> [opts] <file>").
		WithDescription("mouse checks natural-deduction proofs of propositional and first-order formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mouseMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			DumpCommand(cfg),
			ExplainCommand(cfg))
}

func mouseMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: mouse requires an input file, or a subcommand", cli.ErrUsage)
	}
	if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
		err := sub.Run(cc, args[1:])
		if errors.Is(err, cli.ErrUsage) {
			sub.Usage(cc, err)
			os.Exit(sub.Exit(cc, err))
		}
		return err
	}
	return runCheck(&CheckConfig{MainConfig: cfg}, cc, args)
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check <file>").
		WithDescription("parse, verify every line and discharge the file's obligations").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCheck(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump <file>").
		WithDescription("parse and check a proof, then render every line as YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ExplainCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExplainConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("explain").
		WithAliases("e").
		WithSynopsis("explain <file> [line]").
		WithDescription("show the rewrite or scope reasoning behind a line, or the first failing one").
		WithRun(func(cc *cli.Context, args []string) error {
			return runExplain(cfg, cc, args)
		})
	cfg.Explain = cmd
	return cmd
}
