package jsonio

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// StreamOutput appends newline-terminated JSON values to a stream,
// normally the process standard output. All handles share one locked
// writer. Pretty output to a terminal is colorized.
type StreamOutput struct {
	mu       sync.Mutex
	w        io.Writer
	pretty   bool
	colorize bool
}

// NewStreamOutput writes to w; color is never applied.
func NewStreamOutput(w io.Writer, pretty bool) *StreamOutput {
	return &StreamOutput{w: w, pretty: pretty}
}

// NewStdout writes to standard output, colorizing pretty output when
// stdout is a terminal.
func NewStdout(pretty bool) *StreamOutput {
	return &StreamOutput{
		w:        os.Stdout,
		pretty:   pretty,
		colorize: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func (o *StreamOutput) SetPretty(pretty bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pretty = pretty
}

// Append writes one JSON value followed by a newline.
func (o *StreamOutput) Append(v any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.appendLocked(v)
}

// WriteEntries writes each entry as its own single-key object row
// {name: value}.
func (o *StreamOutput) WriteEntries(entries []Entry) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range entries {
		if err := o.appendLocked(map[string]any{e.Name: e.Value}); err != nil {
			return err
		}
	}
	return nil
}

func (o *StreamOutput) appendLocked(v any) error {
	if o.pretty && o.colorize {
		d, err := marshal(v, true)
		if err != nil {
			return err
		}
		if _, err := o.w.Write(append(colorizeJSON(d), '\n')); err != nil {
			return err
		}
		return nil
	}
	return appendRow(o.w, v, o.pretty)
}
