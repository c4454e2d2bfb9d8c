package main

import (
	"fmt"

	"github.com/mson-format/go-mson/encode"

	"github.com/scott-cotton/cli"
)

// view is json with colors forced on, for human eyes.
func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range sourceArgs(args) {
		doc, err := compileArg(arg)
		if err != nil {
			return err
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
