package jsonio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// The Open functions construct sources and sinks from a CLI argument:
// "-" selects the standard stream, an existing directory path (or a
// path without an extension, for sinks) selects a directory, and
// anything else selects a file, created if absent.

// OpenSource returns a Source of named entries for arg. Only a
// directory can supply a collection of named entries.
func OpenSource(arg string) (Source, error) {
	if arg == "-" {
		return nil, fmt.Errorf("cannot read entries from stdin")
	}
	if !isDir(arg) {
		return nil, fmt.Errorf("cannot read entries from file: %s", arg)
	}
	return NewDirectory(arg), nil
}

// OpenReader returns a Reader over a whole object or a line stream.
func OpenReader(arg string) (Reader, error) {
	if arg == "-" {
		return NewStdin(), nil
	}
	if isDir(arg) {
		return nil, fmt.Errorf("cannot read object from directory: %s", arg)
	}
	return NewFile(arg)
}

// OpenAppendable returns a sink supporting Append. Directories cannot
// be appended to.
func OpenAppendable(arg string) (Appendable, error) {
	if arg == "-" {
		return NewStdout(false), nil
	}
	if isDir(arg) || filepath.Ext(arg) == "" {
		return nil, fmt.Errorf("cannot append to a directory output: %s", arg)
	}
	if !exists(arg) {
		slog.Info("creating file", "path", arg)
	}
	return NewFileOutput(arg, false)
}

// OpenWriteable returns a sink for named-entry sets.
func OpenWriteable(arg string) (Writeable, error) {
	if arg == "-" {
		return NewStdout(false), nil
	}
	if isDir(arg) || filepath.Ext(arg) == "" {
		return NewDirOutput(arg, false), nil
	}
	if !exists(arg) {
		slog.Info("creating file", "path", arg)
	}
	return NewFileOutput(arg, false)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
