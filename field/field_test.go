package field

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, data string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return v
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"object", decode(t, `{"a":1,"b":"x"}`), `{"a":1,"b":"x"}`},
		{"array", decode(t, `[1,2,3]`), `[1,2,3]`},
		{"number", float64(42), `42`},
		{"bool", true, `true`},
		{"null", nil, `null`},
		// strings pass through unchanged, no double encoding
		{"string", "already a string", "already a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Escape(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"object", `{"a":1}`, decode(t, `{"a":1}`)},
		{"escaped quotes", `{\"a\":\"x\"}`, decode(t, `{"a":"x"}`)},
		{"array", `[1,2]`, decode(t, `[1,2]`)},
		{"number", `7`, float64(7)},
		// parse failure yields null
		{"garbage", `not json at all {`, nil},
		// non-strings pass through
		{"passthrough object", decode(t, `{"a":1}`), decode(t, `{"a":1}`)},
		{"passthrough number", float64(3), float64(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unescape(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescapeInvertsEscape(t *testing.T) {
	values := []any{
		decode(t, `{"letter":{"uppercase":"A","lowercase":"a"},"position":1}`),
		decode(t, `[1,"two",null]`),
		float64(12),
		true,
		nil,
	}
	for _, v := range values {
		if got := Unescape(Escape(v)); !reflect.DeepEqual(got, v) {
			t.Errorf("Unescape(Escape(%v)) = %v", v, got)
		}
	}
}

func TestEscapeAt(t *testing.T) {
	doc := decode(t, `{"name":"alpha","letter":{"uppercase":"A","lowercase":"a"}}`)
	out, err := EscapeAt(doc, "letter")
	if err != nil {
		t.Fatalf("EscapeAt failed: %v", err)
	}
	obj := out.(map[string]any)
	s, ok := obj["letter"].(string)
	if !ok {
		t.Fatalf("letter is %T, want string", obj["letter"])
	}
	var nested any
	if err := json.Unmarshal([]byte(s), &nested); err != nil {
		t.Fatalf("escaped letter is not JSON: %v", err)
	}
	want := decode(t, `{"uppercase":"A","lowercase":"a"}`)
	if !reflect.DeepEqual(nested, want) {
		t.Errorf("escaped letter = %v, want %v", nested, want)
	}
	if obj["name"] != "alpha" {
		t.Errorf("sibling field changed: %v", obj["name"])
	}
}

func TestUnescapeAtInvertsEscapeAt(t *testing.T) {
	doc := decode(t, `{"name":"alpha","letter":{"uppercase":"A","lowercase":"a"},"position":1}`)
	escaped, err := EscapeAt(doc, "letter")
	if err != nil {
		t.Fatalf("EscapeAt failed: %v", err)
	}
	restored, err := UnescapeAt(escaped, "letter")
	if err != nil {
		t.Fatalf("UnescapeAt failed: %v", err)
	}
	if !reflect.DeepEqual(restored, doc) {
		t.Errorf("round trip = %v, want %v", restored, doc)
	}
}

func TestRewriteAtMissingPathIsNoOp(t *testing.T) {
	doc := decode(t, `{"name":"alpha"}`)
	for _, path := range []string{"letter", "meta.id", "name.deeper"} {
		out, err := EscapeAt(doc, path)
		if err != nil {
			t.Fatalf("EscapeAt(%q) failed: %v", path, err)
		}
		if !reflect.DeepEqual(out, doc) {
			t.Errorf("EscapeAt(%q) changed the document: %v", path, out)
		}
		out, err = UnescapeAt(doc, path)
		if err != nil {
			t.Fatalf("UnescapeAt(%q) failed: %v", path, err)
		}
		if !reflect.DeepEqual(out, doc) {
			t.Errorf("UnescapeAt(%q) changed the document: %v", path, out)
		}
	}
}

func TestUnescapeAtNestedPath(t *testing.T) {
	doc := decode(t, `{"meta":{"payload":"{\"k\":7}"},"name":"x"}`)
	out, err := UnescapeAt(doc, "meta.payload")
	if err != nil {
		t.Fatalf("UnescapeAt failed: %v", err)
	}
	want := decode(t, `{"meta":{"payload":{"k":7}},"name":"x"}`)
	if !reflect.DeepEqual(out, want) {
		t.Errorf("UnescapeAt = %v, want %v", out, want)
	}
}
