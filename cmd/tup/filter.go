package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tuple-format/go-tuple/eval"
	"github.com/signadot/tuple-format/go-tuple/schema"
	"github.com/signadot/tuple-format/go-tuple/tuple"
)

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithSynopsis("filter -schema (file) -e (expr) [files]").
		WithDescription("Bind json tuples (one per line) to a schema and print those matching the expression.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Filter.Parse(cc, args)
			if err != nil {
				return err
			}
			if cfg.Expr == "" {
				return fmt.Errorf("%w: -e is required", cli.ErrUsage)
			}
			s, err := loadSchema(cfg.SchemaFile)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return filterReader(cfg, cc.Out, os.Stdin, s)
			}
			for _, arg := range args {
				f, err := os.Open(arg)
				if err != nil {
					return fmt.Errorf("error opening %s: %w", arg, err)
				}
				err = filterReader(cfg, cc.Out, f, s)
				f.Close()
				if err != nil {
					return fmt.Errorf("error filtering %s: %w", arg, err)
				}
			}
			return nil
		})
	cfg.Filter = cmd
	return cmd
}

func filterReader(cfg *FilterConfig, w io.Writer, r io.Reader, s *schema.Schema) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		d := sc.Bytes()
		if len(d) == 0 {
			continue
		}
		t := &tuple.Tuple{}
		if err := json.Unmarshal(d, t); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		b, err := schema.BindTuple(s, t)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		ok, err := eval.Match(b, cfg.Expr)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		if err := writeTuple(cfg.MainConfig, w, t); err != nil {
			return err
		}
	}
	return sc.Err()
}
