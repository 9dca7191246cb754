package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/letsgetrusty/jsrmx/jsonio"
	"github.com/letsgetrusty/jsrmx/remix"
)

func unbundle(cfg *UnbundleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unbundle.Parse(cc, args)
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
	if err := remix.NewUnbundler(reader, sink).Unbundle(cfg.Names, cfg.Type, cfg.Unescape); err != nil {
		return fmt.Errorf("error unbundling: %w", err)
	}
	return nil
}
