package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/letsgetrusty/jsrmx/jsonio"
	"github.com/letsgetrusty/jsrmx/remix"
)

func bundle(cfg *BundleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bundle.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: bundle requires an input directory", cli.ErrUsage)
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: too many arguments", cli.ErrUsage)
	}
	in := args[0]
	out := "-"
	if len(args) == 2 {
		out = args[1]
	}
	if in == "-" {
		return fmt.Errorf("why bundle from stdin? just redirect output to a file")
	}
	if fi, err := os.Stat(in); err != nil || !fi.IsDir() {
		return fmt.Errorf("cannot bundle from a single file, multiple objects in a file is invalid JSON: %s", in)
	}
	sink, err := openAppendable(cc, out)
	if err != nil {
		return err
	}
	bundler, err := remix.NewBundler(jsonio.NewDirectory(in), sink)
	if err != nil {
		return err
	}
	if err := bundler.Bundle(cfg.Escape); err != nil {
		return fmt.Errorf("error bundling: %w", err)
	}
	return nil
}
