package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='encode tuples as json'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type NewConfig struct {
	*MainConfig
	New *cli.Command
}

type CmpConfig struct {
	*MainConfig
	Cmp *cli.Command
}

type ConcatConfig struct {
	*MainConfig
	Concat *cli.Command
}

type SubConfig struct {
	*MainConfig
	From int `cli:"name=from desc='range start, inclusive'"`
	To   int `cli:"name=to desc='range end, exclusive'"`

	Sub *cli.Command
}

type CheckConfig struct {
	*MainConfig
	SchemaFile string `cli:"name=schema desc='schema json file'"`

	Check *cli.Command
}

type FilterConfig struct {
	*MainConfig
	SchemaFile string `cli:"name=schema desc='schema json file'"`
	Expr       string `cli:"name=e desc='filter expression over attribute names'"`

	Filter *cli.Command
}
