package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/letsgetrusty/jsrmx/jsonio"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='compact JSON output'"`
	Pretty  bool `cli:"name=p aliases=pretty desc='pretty-print output (the default)'"`

	Main *cli.Command
}

// prettyOut reports the effective formatting mode: pretty unless
// -compact was given.
func (cfg *MainConfig) prettyOut() bool {
	return !cfg.Compact
}

// checkFormat rejects -compact together with -pretty.
func (cfg *MainConfig) checkFormat() error {
	if cfg.Compact && cfg.Pretty {
		return fmt.Errorf("%w: must specify at most one of -c[ompact] -p[retty]", cli.ErrUsage)
	}
	return nil
}

type MergeConfig struct {
	*MainConfig

	Filter string `cli:"name=f aliases=filter desc='only merge keys matching regex filter'"`
	Sort   bool   `cli:"name=s aliases=sort desc='alphabetically sort object keys'"`

	Merge *cli.Command
}

type SplitConfig struct {
	*MainConfig

	Filter string `cli:"name=f aliases=filter desc='only split keys matching regex filter'"`

	Split *cli.Command
}

type BundleConfig struct {
	*MainConfig
	Escape []string

	Bundle *cli.Command
}

type UnbundleConfig struct {
	*MainConfig
	Names    []string
	Unescape []string

	Type string `cli:"name=t aliases=type desc='field whose string value is appended to the output name as a dotted suffix'"`

	Unbundle *cli.Command
}

// pathListFunc accumulates comma-separated dotted field paths into dst;
// the flag may be repeated.
func pathListFunc(dst *[]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		for _, p := range strings.Split(a, ",") {
			if p = strings.TrimSpace(p); p != "" {
				*dst = append(*dst, p)
			}
		}
		return a, nil
	}
}

// inOutArgs resolves the optional positional input and output, both
// defaulting to "-".
func inOutArgs(args []string) (string, string, error) {
	in, out := "-", "-"
	switch len(args) {
	case 0:
	case 1:
		in = args[0]
	case 2:
		in, out = args[0], args[1]
	default:
		return "", "", fmt.Errorf("%w: too many arguments", cli.ErrUsage)
	}
	return in, out, nil
}

// streamOut builds the stream sink for a "-" output argument,
// colorizing only when the command's output really is the terminal.
func streamOut(cc *cli.Context) *jsonio.StreamOutput {
	if f, ok := cc.Out.(*os.File); ok && f == os.Stdout {
		return jsonio.NewStdout(false)
	}
	var w io.Writer = cc.Out
	if w == nil {
		w = os.Stdout
	}
	return jsonio.NewStreamOutput(w, false)
}

func openAppendable(cc *cli.Context, arg string) (jsonio.Appendable, error) {
	if arg == "-" {
		return streamOut(cc), nil
	}
	return jsonio.OpenAppendable(arg)
}

func openWriteable(cc *cli.Context, arg string) (jsonio.Writeable, error) {
	if arg == "-" {
		return streamOut(cc), nil
	}
	return jsonio.OpenWriteable(arg)
}
