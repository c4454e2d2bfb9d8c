package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mson-format/go-mson/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range sourceArgs(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := dumpTokens(cfg, cc, d); err != nil {
			return fmt.Errorf("error scanning %s: %w", arg, err)
		}
	}
	return nil
}

func dumpTokens(cfg *TokensConfig, cc *cli.Context, d []byte) error {
	if cfg.Normalize {
		toks, err := token.Tokens(d)
		if err != nil {
			return err
		}
		for i := range toks {
			if err := dumpToken(cc, &toks[i]); err != nil {
				return err
			}
		}
		return nil
	}
	sc := token.NewScanner(d)
	for {
		tok, err := sc.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := dumpToken(cc, tok); err != nil {
			return err
		}
	}
}

func dumpToken(cc *cli.Context, tok *token.Token) error {
	line, col := tok.Pos.LineCol()
	_, err := fmt.Fprintf(cc.Out, "%d:%d\t%s\t%q\n", line, col, tok.Type, tok.String())
	return err
}
