package jsonptr

import (
	"encoding/json"
	"testing"
)

func TestFromDots(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"meta.id", "/meta/id"},
		{"name", "/name"},
		{"a.b.c", "/a/b/c"},
		{"letter.uppercase", "/letter/uppercase"},
		{"", "/"},
	}
	for _, tt := range tests {
		if got := FromDots(tt.path); got != tt.want {
			t.Errorf("FromDots(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGet(t *testing.T) {
	var doc any
	data := `{"name":"alpha","letter":{"uppercase":"A","lowercase":"a"},"tags":["x","y"],"position":1}`
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	tests := []struct {
		pointer string
		want    any
		ok      bool
	}{
		{"/name", "alpha", true},
		{"/letter/uppercase", "A", true},
		{"/tags/0", "x", true},
		{"/tags/1", "y", true},
		{"/position", float64(1), true},
		{"/missing", nil, false},
		{"/letter/missing", nil, false},
		{"/tags/7", nil, false},
		{"/tags/-1", nil, false},
		{"/name/deeper", nil, false},
		{"no-slash", nil, false},
	}
	for _, tt := range tests {
		got, ok := Get(doc, tt.pointer)
		if ok != tt.ok {
			t.Errorf("Get(%q) ok = %v, want %v", tt.pointer, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.pointer, got, tt.want)
		}
	}

	if got, ok := Get(doc, ""); !ok {
		t.Errorf("Get root not ok")
	} else if _, isMap := got.(map[string]any); !isMap {
		t.Errorf("Get root = %T, want map", got)
	}
}

func TestGetString(t *testing.T) {
	doc := map[string]any{"name": "alpha", "position": float64(1)}
	if s, ok := GetString(doc, "/name"); !ok || s != "alpha" {
		t.Errorf("GetString(/name) = %q, %v", s, ok)
	}
	if _, ok := GetString(doc, "/position"); ok {
		t.Errorf("GetString(/position) should not resolve a number")
	}
	if _, ok := GetString(doc, "/nope"); ok {
		t.Errorf("GetString(/nope) should not resolve")
	}
}
