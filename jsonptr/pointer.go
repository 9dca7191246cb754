// Package jsonptr translates dotted field paths into JSON pointers and
// resolves pointers against decoded JSON values.
package jsonptr

import (
	"strconv"
	"strings"
)

// FromDots converts a dotted field path such as "meta.id" into the
// slash-separated pointer form "/meta/id". Segments containing a literal
// '/' are not escaped and will not resolve; this is a documented
// limitation of the dotted syntax, not a validated error.
func FromDots(path string) string {
	return "/" + strings.Join(strings.Split(path, "."), "/")
}

// Get resolves a slash-separated pointer against a decoded JSON value.
// Objects are map[string]any, arrays are []any with numeric segments as
// indices. The second return is false when the pointer does not resolve.
func Get(doc any, pointer string) (any, bool) {
	if pointer == "" {
		return doc, true
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, false
	}
	cur := doc
	for _, seg := range strings.Split(pointer[1:], "/") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			cur = v[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// GetString resolves pointer and returns the value only if it is a JSON
// string.
func GetString(doc any, pointer string) (string, bool) {
	v, ok := Get(doc, pointer)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
