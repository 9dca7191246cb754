package remix

import (
	"reflect"
	"sort"
	"testing"

	"github.com/letsgetrusty/jsrmx/jsonio"
)

func TestMergeUnfiltered(t *testing.T) {
	entries := []jsonio.Entry{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
		{Name: "c", Value: "3"},
	}
	got := Merge(entries, "")
	want := map[string]any{"a": "1", "b": "2", "c": "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeFiltered(t *testing.T) {
	entries := []jsonio.Entry{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
		{Name: "c", Value: "3"},
	}
	got := Merge(entries, "b")
	want := map[string]any{"b": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeFilterScenario(t *testing.T) {
	entries := []jsonio.Entry{
		{Name: "alpha", Value: map[string]any{"position": float64(1)}},
		{Name: "bravo", Value: map[string]any{"position": float64(2)}},
	}
	got := Merge(entries, "alpha")
	want := map[string]any{"alpha": map[string]any{"position": float64(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeInvalidFilterMatchesAll(t *testing.T) {
	entries := []jsonio.Entry{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
	}
	got := Merge(entries, "([unclosed")
	if len(got) != 2 {
		t.Errorf("invalid filter should fail open, got %v", got)
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	entries := []jsonio.Entry{
		{Name: "a", Value: "first"},
		{Name: "a", Value: "second"},
	}
	got := Merge(entries, "")
	if got["a"] != "second" {
		t.Errorf("Merge duplicate = %v, want second", got["a"])
	}
}

func TestSplitFiltered(t *testing.T) {
	obj := map[string]any{"a": "1", "b": "2", "c": "3"}
	got := Split(obj, "b")
	if len(got) != 1 || got[0].Name != "b" || got[0].Value != "2" {
		t.Errorf("Split = %v", got)
	}
}

func TestSplitThenMergeRestoresObject(t *testing.T) {
	obj := map[string]any{
		"alpha": map[string]any{"position": float64(1)},
		"bravo": map[string]any{"position": float64(2)},
		"tags":  []any{"x", "y"},
	}
	got := Merge(Split(obj, ""), "")
	if !reflect.DeepEqual(got, obj) {
		t.Errorf("Merge(Split(obj)) = %v, want %v", got, obj)
	}
}

func TestSplitUnfilteredOrderAgnostic(t *testing.T) {
	obj := map[string]any{"a": "1", "b": "2", "c": "3"}
	got := Split(obj, "")
	// output order is unspecified, sort before comparing
	sort.Slice(got, func(i, j int) bool { return got[i].Name < got[j].Name })
	want := []jsonio.Entry{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}, {Name: "c", Value: "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}
