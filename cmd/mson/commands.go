package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mson").
		WithSynopsis("mson [opts] command [opts] [files]").
		WithDescription("mson compiles schema notation to its interchange representation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return msonMain(cfg, cc, args)
		}).
		WithSubs(
			JSONCommand(cfg),
			ViewCommand(cfg),
			TokensCommand(cfg),
			CheckCommand(cfg))
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithSynopsis("json [files]").
		WithDescription("compile files, or stdin, to interchange output").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonRun(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view compiled files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-n] [files]").
		WithDescription("dump the token stream of files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
	cfg.Tokens = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("parse files and report the first error in each").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
