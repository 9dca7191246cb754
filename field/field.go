// Package field implements the escape/unescape codec for nested JSON
// values: escaping replaces a value with its compact JSON serialization
// as a string, unescaping parses such a string back into a value. Both
// can be applied in place at a dotted field path.
package field

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/letsgetrusty/jsrmx/debug"
	"github.com/letsgetrusty/jsrmx/jsonptr"
)

// Escape returns v string-serialized. A value that is already a JSON
// string passes through unchanged, so Escape is idempotent.
func Escape(v any) any {
	if s, ok := v.(string); ok {
		return s
	}
	d, err := json.Marshal(v)
	if err != nil {
		// decoded JSON values always remarshal
		return v
	}
	return string(d)
}

// Unescape parses a string-typed value as JSON after normalizing escaped
// quotes; a parse failure yields JSON null. Non-string values pass
// through unchanged.
func Unescape(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	var out any
	if err := json.Unmarshal([]byte(strings.ReplaceAll(s, `\"`, `"`)), &out); err != nil {
		return nil
	}
	return out
}

// EscapeAt rewrites the value at the dotted path within doc to its
// escaped form. A path that does not resolve is a no-op.
func EscapeAt(doc any, path string) (any, error) {
	return rewrite(doc, path, Escape)
}

// UnescapeAt rewrites the value at the dotted path within doc to its
// unescaped form. A path that does not resolve is a no-op.
func UnescapeAt(doc any, path string) (any, error) {
	return rewrite(doc, path, Unescape)
}

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// rewrite replaces the value at path with f(value) by applying an
// RFC 6902 replace operation to the serialized document.
func rewrite(doc any, path string, f func(any) any) (any, error) {
	ptr := jsonptr.FromDots(path)
	cur, ok := jsonptr.Get(doc, ptr)
	if !ok {
		return doc, nil
	}
	if debug.Field() {
		debug.Logf("rewriting field %s at %s", path, ptr)
	}
	ops, err := json.Marshal([]patchOp{{Op: "replace", Path: ptr, Value: f(cur)}})
	if err != nil {
		return nil, fmt.Errorf("could not encode patch for %q: %w", path, err)
	}
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch for %q: %w", path, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}
	out, err := patch.Apply(raw)
	if err != nil {
		return nil, fmt.Errorf("could not rewrite %q: %w", path, err)
	}
	var res any
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("could not decode rewritten document: %w", err)
	}
	return res, nil
}
