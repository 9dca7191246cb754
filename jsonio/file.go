package jsonio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// File is a Reader over a single JSON or NDJSON file. All handles share
// one buffered cursor; ReadLine callers serialize on its lock.
type File struct {
	path string

	mu sync.Mutex
	f  *os.File
	r  *bufio.Reader
}

func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return &File{path: path, f: f, r: bufio.NewReader(f)}, nil
}

// GetObject reads the whole file and parses it as one JSON object,
// independently of the line cursor.
func (f *File) GetObject() (map[string]any, error) {
	d, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	return decodeObject(d, f.path)
}

// ReadLine appends the next newline-delimited chunk to buf. At end of
// input nothing is appended.
func (f *File) ReadLine(buf *bytes.Buffer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return readLine(f.r, buf)
}

// GetEntries is unsupported: a file holds one object, not a collection
// of named entries.
func (f *File) GetEntries(bool) ([]Entry, error) {
	return nil, errUnsupported("cannot read entries from file " + f.path)
}

// Close releases the underlying file.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.Close()
}

// Stdin is a Reader over the process standard input, sharing one
// locked cursor across all handles.
type Stdin struct {
	mu sync.Mutex
	r  *bufio.Reader
}

func NewStdin() *Stdin {
	return &Stdin{r: bufio.NewReader(os.Stdin)}
}

func (s *Stdin) GetObject() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := io.ReadAll(s.r)
	if err != nil {
		return nil, err
	}
	return decodeObject(d, "stdin")
}

func (s *Stdin) ReadLine(buf *bytes.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readLine(s.r, buf)
}

func (s *Stdin) GetEntries(bool) ([]Entry, error) {
	return nil, errUnsupported("cannot read entries from stdin")
}

func readLine(r *bufio.Reader, buf *bytes.Buffer) error {
	chunk, err := r.ReadBytes('\n')
	buf.Write(chunk)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeObject(d []byte, from string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", from, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s does not hold a top-level JSON object", from)
	}
	return obj, nil
}
