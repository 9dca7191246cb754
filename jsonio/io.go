// Package jsonio provides the source and sink abstractions jsrmx
// operates over: a directory of named JSON entries, a single JSON file,
// or a standard stream, readable as whole objects or as NDJSON lines
// and writable as named entries or appended rows.
//
// Operations that make no sense for a given kind (reading a directory
// line by line, appending a row to a directory) return an
// unsupported-operation error rather than being ruled out by the type
// system; the operation set is small and a runtime check with a clear
// message beats an elaborate hierarchy.
package jsonio

import (
	"bytes"
	"fmt"
)

// Entry is one logical record in a collection: a name paired with a
// decoded JSON value. Names are unique within a collection load.
type Entry struct {
	Name  string
	Value any
}

// Source provides a bag of named JSON entries.
type Source interface {
	// GetEntries returns the collection. With sort set, entries are
	// ordered lexicographically by name; otherwise the order is
	// whatever the underlying storage yields, which may vary between
	// runs.
	GetEntries(sort bool) ([]Entry, error)
}

// Reader provides a single JSON object or a sequence of JSON lines.
type Reader interface {
	// GetObject reads the entire input and parses it as one JSON
	// object. It fails if the top-level value is not an object.
	GetObject() (map[string]any, error)
	// ReadLine appends the next newline-delimited chunk to buf. An
	// empty append signals end of input. Concurrent callers serialize
	// on the reader's internal lock.
	ReadLine(buf *bytes.Buffer) error
}

// Writeable accepts a set of named entries.
type Writeable interface {
	// SetPretty switches formatting for all subsequent writes.
	SetPretty(pretty bool)
	// WriteEntries writes each entry. Entries are independent: a
	// failure writing one is logged and does not abort the others;
	// only systemic failures are returned.
	WriteEntries(entries []Entry) error
}

// Appendable additionally accepts single values appended as NDJSON
// rows. Append is safe for concurrent callers.
type Appendable interface {
	Writeable
	Append(v any) error
}

func errUnsupported(what string) error {
	return fmt.Errorf("unsupported operation: %s", what)
}
