package jsonio

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DirOutput writes each entry to <dir>/<name>.json. Entries are
// independent, so writes fan out across a pool bounded by the number of
// CPUs.
type DirOutput struct {
	path   string
	pretty bool
}

func NewDirOutput(path string, pretty bool) *DirOutput {
	return &DirOutput{path: path, pretty: pretty}
}

func (o *DirOutput) SetPretty(pretty bool) {
	o.pretty = pretty
}

// Append is unsupported for directories.
func (o *DirOutput) Append(any) error {
	return errUnsupported("cannot append to a directory output: " + o.path)
}

// WriteEntries creates the target directory if needed, then writes the
// entries concurrently. A failure writing one entry is logged and does
// not abort the others; only directory creation failure is returned.
func (o *DirOutput) WriteEntries(entries []Entry) error {
	if o.path != "." {
		if err := os.MkdirAll(o.path, 0o755); err != nil {
			return err
		}
	}
	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for _, e := range entries {
		g.Go(func() error {
			if err := o.writeFile(e.Name+".json", e.Value); err != nil {
				slog.Error("error writing entry", "name", e.Name, "err", err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (o *DirOutput) writeFile(filename string, v any) error {
	path := filepath.Join(o.path, filename)
	slog.Info("writing file", "path", path)
	d, err := marshal(v, o.pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
