package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode on one line'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Indent  int  `cli:"name=indent desc='indent step (default 2)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type RemoveConfig struct {
	*MainConfig

	Remove *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Key  string `cli:"name=k desc='match list elements by this field'"`
	Path string `cli:"name=p desc='path of the lists to match with -k'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Match bool `cli:"name=m desc='print names of files for which the expression is true'"`

	Eval *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Write     bool `cli:"name=w desc='write each file beside its input, named with the format suffix'"`
	OutFormat *format.Format

	Export *cli.Command
}

func (cfg *ExportConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

type SlotsConfig struct {
	*MainConfig
	Capacity int `cli:"name=n desc='slot capacity'"`

	Slots *cli.Command
}
