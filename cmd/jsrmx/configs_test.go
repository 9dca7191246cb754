package main

import (
	"reflect"
	"testing"
)

func TestPathListFunc(t *testing.T) {
	var paths []string
	fn := pathListFunc(&paths)
	for _, arg := range []string{"letter,meta.id", "name", " spaced , "} {
		if _, err := fn(nil, arg); err != nil {
			t.Fatalf("pathListFunc(%q) failed: %v", arg, err)
		}
	}
	want := []string{"letter", "meta.id", "name", "spaced"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestInOutArgs(t *testing.T) {
	tests := []struct {
		args    []string
		in, out string
		wantErr bool
	}{
		{nil, "-", "-", false},
		{[]string{"in.ndjson"}, "in.ndjson", "-", false},
		{[]string{"in.ndjson", "outdir"}, "in.ndjson", "outdir", false},
		{[]string{"a", "b", "c"}, "", "", true},
	}
	for _, tt := range tests {
		in, out, err := inOutArgs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("inOutArgs(%v) err = %v", tt.args, err)
			continue
		}
		if err == nil && (in != tt.in || out != tt.out) {
			t.Errorf("inOutArgs(%v) = %q, %q", tt.args, in, out)
		}
	}
}
