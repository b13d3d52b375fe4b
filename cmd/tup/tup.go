package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"
)

func tupMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// parseValue turns a command line argument into a tuple element. Values
// are inferred like literals: null, true/false, integers, floats, else
// string. A "str:" prefix forces the remainder to be taken verbatim.
func parseValue(arg string) any {
	if rest, ok := strings.CutPrefix(arg, "str:"); ok {
		return rest
	}
	switch arg {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}

func parseValues(args []string) []any {
	vs := make([]any, len(args))
	for i, a := range args {
		vs[i] = parseValue(a)
	}
	return vs
}

// splitArgs splits args at the first "--" separator.
func splitArgs(args []string) ([]string, []string, bool) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}
