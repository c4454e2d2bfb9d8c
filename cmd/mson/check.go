package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

// check parses each argument and reports the first error found in it.
// The exit status is the number of arguments that failed.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, arg := range sourceArgs(args) {
		if _, err := compileArg(arg); err != nil {
			bad++
			if _, werr := fmt.Fprintf(cc.Out, "%s\n", err); werr != nil {
				return werr
			}
			continue
		}
		if cfg.Quiet {
			continue
		}
		if _, err := fmt.Fprintf(cc.Out, "%s: ok\n", arg); err != nil {
			return err
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(bad)
	}
	return nil
}
