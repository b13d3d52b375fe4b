package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tuple-format/go-tuple/schema"
)

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithSynopsis("check -schema (file) [values]").
		WithDescription("Check values against a schema, printing the bound tuple on success.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Check.Parse(cc, args)
			if err != nil {
				return err
			}
			s, err := loadSchema(cfg.SchemaFile)
			if err != nil {
				return err
			}
			b, err := schema.Bind(s, parseValues(args)...)
			if err != nil {
				return err
			}
			if cfg.J {
				d, err := json.Marshal(b)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cc.Out, "%s\n", d)
				return err
			}
			_, err = fmt.Fprintln(cc.Out, b)
			return err
		})
	cfg.Check = cmd
	return cmd
}

func loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -schema is required", cli.ErrUsage)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening schema %s: %w", path, err)
	}
	s := &schema.Schema{}
	if err := json.Unmarshal(d, s); err != nil {
		return nil, fmt.Errorf("error decoding schema %s: %w", path, err)
	}
	return s, nil
}
