package main

import (
	"fmt"

	"github.com/mson-format/go-mson/encode"

	"github.com/scott-cotton/cli"
)

func jsonRun(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		cfg.JSON.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range sourceArgs(args) {
		doc, err := compileArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
