// Package remix implements the four transforms: Merge and Split convert
// between a single JSON object and a collection of named entries;
// Bundle and Unbundle convert between a directory of single-object
// files and an NDJSON stream.
package remix

import (
	"log/slog"
	"regexp"

	"github.com/letsgetrusty/jsrmx/jsonio"
)

// Merge collects entries into one object keyed by entry name. Later
// entries win on duplicate names, so the result is only deterministic
// when the entries were collected sorted. A non-empty filter is
// compiled as a regular expression and an entry is included iff its
// name matches; an invalid pattern disables filtering with a warning.
func Merge(entries []jsonio.Entry, filter string) map[string]any {
	re := compileFilter(filter)
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		if re != nil && !re.MatchString(e.Name) {
			continue
		}
		out[e.Name] = e.Value
	}
	return out
}

// Split expands an object's key/value pairs into entries, applying the
// same regex-inclusion rule as Merge. Output order is unspecified;
// callers needing stable output sort downstream or write to a
// directory sink, whose filenames make order irrelevant.
func Split(obj map[string]any, filter string) []jsonio.Entry {
	re := compileFilter(filter)
	entries := make([]jsonio.Entry, 0, len(obj))
	for name, value := range obj {
		if re != nil && !re.MatchString(name) {
			continue
		}
		entries = append(entries, jsonio.Entry{Name: name, Value: value})
	}
	return entries
}

// compileFilter fails open: a bad pattern means no filter.
func compileFilter(filter string) *regexp.Regexp {
	if filter == "" {
		return nil
	}
	re, err := regexp.Compile(filter)
	if err != nil {
		slog.Warn("invalid filter pattern, matching all keys", "pattern", filter, "err", err)
		return nil
	}
	return re
}
