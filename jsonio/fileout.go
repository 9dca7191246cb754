package jsonio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// FileOutput appends newline-terminated JSON values to a file. The file
// is opened once and kept open for the process lifetime; all handles
// share one locked writer.
type FileOutput struct {
	path string

	mu     sync.Mutex
	f      *os.File
	pretty bool
}

func NewFileOutput(path string, pretty bool) (*FileOutput, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open %q for append: %w", path, err)
	}
	return &FileOutput{path: path, f: f, pretty: pretty}, nil
}

func (o *FileOutput) SetPretty(pretty bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pretty = pretty
}

// Append writes one JSON value followed by a newline.
func (o *FileOutput) Append(v any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return appendRow(o.f, v, o.pretty)
}

// WriteEntries appends each entry as its own single-key object row
// {name: value}. Pretty-printing here breaks one-object-per-line
// framing and is discouraged, but not prevented.
func (o *FileOutput) WriteEntries(entries []Entry) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range entries {
		if err := appendRow(o.f, map[string]any{e.Name: e.Value}, o.pretty); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying file.
func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.f.Close()
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func appendRow(w io.Writer, v any, pretty bool) error {
	d, err := marshal(v, pretty)
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
