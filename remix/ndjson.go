package remix

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/letsgetrusty/jsrmx/debug"
	"github.com/letsgetrusty/jsrmx/field"
	"github.com/letsgetrusty/jsrmx/jsonio"
	"github.com/letsgetrusty/jsrmx/jsonptr"
)

// Bundler turns a directory of single-object JSON files into an NDJSON
// stream.
type Bundler struct {
	src *jsonio.Directory
	out jsonio.Appendable
}

// NewBundler fails fast on combinations that cannot bundle: the source
// must be a directory of files and the sink must be a stream, never a
// file tree.
func NewBundler(src *jsonio.Directory, out jsonio.Appendable) (*Bundler, error) {
	if src == nil {
		return nil, fmt.Errorf("bundle requires a directory source")
	}
	if _, ok := out.(*jsonio.DirOutput); ok {
		return nil, fmt.Errorf("cannot bundle to a directory")
	}
	return &Bundler{src: src, out: out}, nil
}

// Bundle appends every .json file in the source directory to the sink
// as one NDJSON row, escaping the configured field paths first. Files
// are processed by a bounded pool in no particular order; Append is
// internally synchronized. A file that cannot be read or parsed is
// logged and skipped; sink failures abort the run.
func (b *Bundler) Bundle(escapePaths []string) error {
	files, err := b.src.Files()
	if err != nil {
		return err
	}
	if debug.Entries() {
		debug.Logf("bundling %d files, escaping %v", len(files), escapePaths)
	}
	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for _, name := range files {
		g.Go(func() error {
			entry, err := b.src.ReadEntry(name)
			if err != nil {
				slog.Error("skipping file", "file", name, "err", err)
				return nil
			}
			v := entry.Value
			for _, p := range escapePaths {
				v, err = field.EscapeAt(v, p)
				if err != nil {
					return fmt.Errorf("could not escape %q in %s: %w", p, name, err)
				}
			}
			return b.out.Append(v)
		})
	}
	return g.Wait()
}

// Unbundler turns an NDJSON stream back into named single-object
// entries.
type Unbundler struct {
	in  jsonio.Reader
	out jsonio.Writeable
}

func NewUnbundler(in jsonio.Reader, out jsonio.Writeable) *Unbundler {
	return &Unbundler{in: in, out: out}
}

// Unbundle streams NDJSON lines from the reader and writes each parsed
// row to the sink as a single entry. Rows keep input line order; the
// zero-based line counter names rows object-NNNNNN unless one of
// namePaths resolves to a string in the row. A typePath resolving to a
// string appends a dotted suffix to the name. Unescape paths are
// rewritten before naming, so a name may come from an unescaped field.
// A malformed line is logged and skipped; running out of input mid-line
// ends the stream cleanly.
func (u *Unbundler) Unbundle(namePaths []string, typePath string, unescapePaths []string) error {
	namePtrs := make([]string, 0, len(namePaths))
	for _, p := range namePaths {
		namePtrs = append(namePtrs, jsonptr.FromDots(p))
	}
	typePtr := ""
	if typePath != "" {
		typePtr = jsonptr.FromDots(typePath)
	}

	buf := &bytes.Buffer{}
	for i := 0; ; i++ {
		buf.Reset()
		if err := u.in.ReadLine(buf); err != nil {
			return err
		}
		if buf.Len() == 0 {
			break
		}
		if debug.Lines() {
			debug.Logf("line %d: %s", i, buf.Bytes())
		}
		var row any
		if err := json.Unmarshal(buf.Bytes(), &row); err != nil {
			if truncated(err) {
				break
			}
			slog.Error("failed to parse line", "line", i, "err", err)
			continue
		}
		for _, p := range unescapePaths {
			v, err := field.UnescapeAt(row, p)
			if err != nil {
				slog.Error("could not unescape field", "path", p, "line", i, "err", err)
				continue
			}
			row = v
		}
		entry := jsonio.Entry{Name: u.entryName(i, row, namePtrs, typePtr), Value: row}
		if debug.Entries() {
			debug.Dump(entry)
		}
		if err := u.out.WriteEntries([]jsonio.Entry{entry}); err != nil {
			return err
		}
	}
	return nil
}

// entryName derives a row's name: the first name pointer resolving to a
// string, else the sequence default, with the type suffix appended when
// its pointer resolves to a string.
func (u *Unbundler) entryName(i int, row any, namePtrs []string, typePtr string) string {
	name := fmt.Sprintf("object-%06d", i)
	for _, ptr := range namePtrs {
		if s, ok := jsonptr.GetString(row, ptr); ok {
			name = s
			break
		}
	}
	if typePtr != "" {
		if s, ok := jsonptr.GetString(row, typePtr); ok {
			name = name + "." + s
		}
	}
	return name
}

// truncated reports a parse error caused by running out of bytes
// mid-token, which signals clean stream exhaustion rather than a bad
// row.
func truncated(err error) bool {
	var syn *json.SyntaxError
	return errors.As(err, &syn) && strings.HasPrefix(syn.Error(), "unexpected end")
}
