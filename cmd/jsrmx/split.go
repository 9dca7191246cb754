package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/letsgetrusty/jsrmx/jsonio"
	"github.com/letsgetrusty/jsrmx/remix"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormat(); err != nil {
		return err
	}
	in, out, err := inOutArgs(args)
	if err != nil {
		return err
	}
	reader, err := jsonio.OpenReader(in)
	if err != nil {
		return err
	}
	sink, err := openWriteable(cc, out)
	if err != nil {
		return err
	}
	sink.SetPretty(cfg.prettyOut())
	obj, err := reader.GetObject()
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if err := sink.WriteEntries(remix.Split(obj, cfg.Filter)); err != nil {
		return fmt.Errorf("error splitting: %w", err)
	}
	return nil
}
