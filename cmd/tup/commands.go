package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tuple-format/go-tuple/tuple"
)

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

	return cli.NewCommandAt(&cfg.Main, "tup").
		WithSynopsis("tup [opts] command [opts]").
		WithDescription("tup is a tool for working with tuples and tuple schemas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tupMain(cfg, cc, args)
		}).
		WithSubs(
			NewCommand(cfg),
			CmpCommand(cfg),
			ConcatCommand(cfg),
			SubCommand(cfg),
			CheckCommand(cfg),
			FilterCommand(cfg))
}

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("new").
		WithAliases("n").
		WithSynopsis("new [values]").
		WithDescription("Build a tuple from the given values and print it.").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.New.Parse(cc, args)
			if err != nil {
				return err
			}
			return writeTuple(cfg.MainConfig, cc.Out, tuple.Of(parseValues(args)...))
		})
	cfg.New = cmd
	return cmd
}

func CmpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CmpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("cmp").
		WithSynopsis("cmp [values] -- [values]").
		WithDescription("Compare two tuples lexicographically, printing -1, 0 or 1.").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Cmp.Parse(cc, args)
			if err != nil {
				return err
			}
			as, bs, ok := splitArgs(args)
			if !ok {
				return fmt.Errorf("%w: cmp requires two value lists separated by --", cli.ErrUsage)
			}
			a := tuple.Of(parseValues(as)...)
			b := tuple.Of(parseValues(bs)...)
			_, err = fmt.Fprintln(cc.Out, sign(a.CompareTo(b)))
			return err
		})
	cfg.Cmp = cmd
	return cmd
}

func ConcatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConcatConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("concat").
		WithAliases("cat").
		WithSynopsis("concat [values] -- [values]").
		WithDescription("Concatenate two tuples and print the result.").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Concat.Parse(cc, args)
			if err != nil {
				return err
			}
			as, bs, ok := splitArgs(args)
			if !ok {
				return fmt.Errorf("%w: concat requires two value lists separated by --", cli.ErrUsage)
			}
			a := tuple.Of(parseValues(as)...)
			b := tuple.Of(parseValues(bs)...)
			return writeTuple(cfg.MainConfig, cc.Out, a.Concat(b))
		})
	cfg.Concat = cmd
	return cmd
}

func SubCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SubConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("sub").
		WithSynopsis("sub -from (i) -to (j) [values]").
		WithDescription("Print the sub-tuple over the half-open range [from, to).").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Sub.Parse(cc, args)
			if err != nil {
				return err
			}
			t := tuple.Of(parseValues(args)...)
			sub, err := t.Sub(cfg.From, cfg.To)
			if err != nil {
				return err
			}
			return writeTuple(cfg.MainConfig, cc.Out, sub)
		})
	cfg.Sub = cmd
	return cmd
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
