package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mson-format/go-mson/encode"
	"github.com/mson-format/go-mson/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if fmat.IsYAML() {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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

type JSONConfig struct {
	*MainConfig

	JSON *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Normalize bool `cli:"name=n aliases=norm desc='include indentation tokens'"`

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-file ok lines'"`

	Check *cli.Command
}
