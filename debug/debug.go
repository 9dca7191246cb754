// Package debug exposes environment-gated trace switches for the
// engine. Set JSRMX_DEBUG_FIELD, JSRMX_DEBUG_LINES or
// JSRMX_DEBUG_ENTRIES to a truthy value to enable the corresponding
// traces on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Field   bool
	Lines   bool
	Entries bool
}

var d *debug

func init() {
	d = &debug{}
	d.Field = boolEnv("JSRMX_DEBUG_FIELD")
	d.Lines = boolEnv("JSRMX_DEBUG_LINES")
	d.Entries = boolEnv("JSRMX_DEBUG_ENTRIES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Field() bool {
	return d.Field
}
func Lines() bool {
	return d.Lines
}
func Entries() bool {
	return d.Entries
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Dump writes a deep representation of v to stderr.
func Dump(v any) {
	spew.Fdump(os.Stderr, v)
}
