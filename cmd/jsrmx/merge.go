package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/letsgetrusty/jsrmx/jsonio"
	"github.com/letsgetrusty/jsrmx/remix"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormat(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires an input directory", cli.ErrUsage)
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: too many arguments", cli.ErrUsage)
	}
	out := "-"
	if len(args) == 2 {
		out = args[1]
	}
	src, err := jsonio.OpenSource(args[0])
	if err != nil {
		return err
	}
	sink, err := openAppendable(cc, out)
	if err != nil {
		return err
	}
	sink.SetPretty(cfg.prettyOut())
	entries, err := src.GetEntries(cfg.Sort)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	if err := sink.Append(remix.Merge(entries, cfg.Filter)); err != nil {
		return fmt.Errorf("error writing to output: %w", err)
	}
	return nil
}
