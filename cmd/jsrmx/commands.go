package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsrmx").
		WithSynopsis("jsrmx [opts] command [opts]").
		WithDescription("jsrmx is a tool to break apart or combine large JSON and NDJSON files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsrmxMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			SplitCommand(cfg),
			BundleCommand(cfg),
			UnbundleCommand(cfg))
}

func jsrmxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormat(); err != nil {
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

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [opts] <input-dir> [output]").
		WithDescription("merge multiple single-object <dir>/${key}.json files into one json object").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithAliases("s").
		WithSynopsis("split [opts] [input] [output]").
		WithDescription("split a single JSON object into multiple json objects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func BundleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BundleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "escape",
		Description: "string-escape nested objects at these dotted field paths",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(pathListFunc(&cfg.Escape)), "(path[,path...])"),
	})
	return cli.NewCommandAt(&cfg.Bundle, "bundle").
		WithAliases("b").
		WithSynopsis("bundle [opts] <input-dir> [output]").
		WithDescription("bundle multiple <dir>/*.json files into one ndjson file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bundle(cfg, cc, args)
		})
}

func UnbundleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnbundleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "name",
			Aliases:     []string{"n"},
			Description: "derive output names from the first of these dotted field paths holding a string",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(pathListFunc(&cfg.Names)), "(path[,path...])"),
		},
		&cli.Opt{
			Name:        "unescape",
			Description: "parse string-escaped nested objects at these dotted field paths",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(pathListFunc(&cfg.Unescape)), "(path[,path...])"),
		})
	return cli.NewCommandAt(&cfg.Unbundle, "unbundle").
		WithAliases("u").
		WithSynopsis("unbundle [opts] [input] [output]").
		WithDescription("unbundle a single ndjson [input] into multiple json objects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unbundle(cfg, cc, args)
		})
}
