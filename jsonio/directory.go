package jsonio

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Directory is a Source over a directory of single-object JSON files.
// It holds no cursor; every read re-scans the filesystem.
type Directory struct {
	path string
}

func NewDirectory(path string) *Directory {
	return &Directory{path: path}
}

// Path returns the directory path.
func (d *Directory) Path() string {
	return d.path
}

// GetEntries lists the directory's immediate children, parsing each as
// JSON and deriving the entry name from the filename stem. Unreadable
// or malformed files are logged and skipped.
func (d *Directory) GetEntries(sorted bool) ([]Entry, error) {
	files, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := filepath.Join(d.path, f.Name())
		value, err := readValue(path)
		if err != nil {
			slog.Error("skipping unreadable entry", "file", path, "err", err)
			continue
		}
		name := stem(f.Name())
		slog.Info("read entry", "name", name, "file", path)
		entries = append(entries, Entry{Name: name, Value: value})
	}
	if sorted {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}
	return entries, nil
}

// GetObject is unsupported: a directory holds many objects, not one.
func (d *Directory) GetObject() (map[string]any, error) {
	return nil, errUnsupported("cannot read object from directory " + d.path)
}

// ReadLine is unsupported: a directory has no line cursor.
func (d *Directory) ReadLine(*bytes.Buffer) error {
	return errUnsupported("cannot read lines from directory " + d.path)
}

// Files returns the names of the directory's .json children, in
// directory-iteration order.
func (d *Directory) Files() ([]string, error) {
	files, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		names = append(names, f.Name())
	}
	return names, nil
}

// ReadEntry reads one named child file as a JSON entry.
func (d *Directory) ReadEntry(filename string) (Entry, error) {
	path := filepath.Join(d.path, filename)
	slog.Info("reading file", "file", path)
	v, err := readValue(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: stem(filename), Value: v}, nil
}

func readValue(path string) (any, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
