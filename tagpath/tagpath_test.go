package tagpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tagtree/tag"
)

func TestSetCreatesParents(t *testing.T) {
	root := tag.NewCompound()
	if err := Set(root, tag.FromInt(0xFF0000), "display", "color"); err != nil {
		t.Fatal(err)
	}
	display := root.Get("display")
	if display == nil || display.Type != tag.CompoundType {
		t.Fatalf("display not created: %+v", display)
	}
	if got := GetValue(root, int32(-1), "display", "color"); got != 0xFF0000 {
		t.Errorf("got %d", got)
	}
	// idempotent
	if err := Set(root, tag.FromInt(0xFF0000), "display", "color"); err != nil {
		t.Fatal(err)
	}
	if display.Len() != 1 || root.Len() != 1 {
		t.Errorf("repeated set changed shape")
	}
}

func TestGetAbsent(t *testing.T) {
	root := tag.NewCompound()
	root.Put("name", tag.FromString("x"))
	tests := []struct {
		name string
		path []string
	}{
		{"missing", []string{"display", "color"}},
		{"through leaf", []string{"name", "color"}},
		{"missing leaf", []string{"other"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(root, tt.path...)
			if err != nil || got != nil {
				t.Errorf("got %v %v", got, err)
			}
			if Has(root, tt.path...) {
				t.Error("Has reported true")
			}
			if v := GetValue(root, int32(-1), tt.path...); v != -1 {
				t.Errorf("default not used: %d", v)
			}
		})
	}
	if v := GetValue(root, int32(-1), "name"); v != -1 {
		t.Errorf("mismatched type should give default, got %d", v)
	}
}

func TestSetThroughLeaf(t *testing.T) {
	root := tag.NewCompound()
	root.Put("name", tag.FromString("x"))
	before := root.Clone()
	err := Set(root, tag.FromInt(1), "name", "a", "b")
	if !errors.Is(err, tag.ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) || pe.Op != "set" {
		t.Errorf("expected PathError, got %T", err)
	}
	if !tag.Equal(before, root) {
		t.Error("failed set modified the tree")
	}
}

func TestInvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		root *tag.Tag
		path []string
	}{
		{"empty path", tag.NewCompound(), nil},
		{"nil root", nil, []string{"a"}},
		{"list root", tag.NewList(), []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Get(tt.root, tt.path...); !errors.Is(err, tag.ErrInvalidArgument) {
				t.Errorf("get: %v", err)
			}
			if err := Set(tt.root, tag.FromInt(1), tt.path...); !errors.Is(err, tag.ErrInvalidArgument) {
				t.Errorf("set: %v", err)
			}
			if err := Remove(tt.root, tt.path...); !errors.Is(err, tag.ErrInvalidArgument) {
				t.Errorf("remove: %v", err)
			}
		})
	}
	if err := Set(tag.NewCompound(), nil, "a"); !errors.Is(err, tag.ErrInvalidArgument) {
		t.Errorf("nil tag: %v", err)
	}
}

func TestRemovePrunes(t *testing.T) {
	root := tag.NewCompound()
	if err := SetValue(root, int32(1), "a", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if err := SetValue(root, "keep", "x"); err != nil {
		t.Fatal(err)
	}
	if err := Remove(root, "a", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x"}, root.Keys()); diff != "" {
		t.Error(diff)
	}

	// a sibling stops pruning
	if err := SetValue(root, int32(1), "a", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if err := SetValue(root, int32(2), "a", "d"); err != nil {
		t.Fatal(err)
	}
	if err := Remove(root, "a", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"d"}, root.Get("a").Keys()); diff != "" {
		t.Error(diff)
	}

	// the root may become empty but stays
	if err := Remove(root, "x"); err != nil {
		t.Fatal(err)
	}
	if err := Remove(root, "a", "d"); err != nil {
		t.Fatal(err)
	}
	if root.Type != tag.CompoundType || !root.IsEmpty() {
		t.Errorf("root: %+v", root)
	}
	// absent path is a no-op
	if err := Remove(root, "nope", "deeper"); err != nil {
		t.Error(err)
	}
}

func TestAdd(t *testing.T) {
	root := tag.NewCompound()
	if err := Add(root, "id", int16(3), "skip", nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"id"}, root.Keys()); diff != "" {
		t.Error(diff)
	}
	if err := Add(root, "odd"); !errors.Is(err, tag.ErrInvalidArgument) {
		t.Errorf("odd: %v", err)
	}
	before := root.Clone()
	if err := Add(root, "count", int8(2), "bad", make(chan int)); !errors.Is(err, tag.ErrUnsupportedType) {
		t.Fatalf("got %v", err)
	}
	if !tag.Equal(before, root) {
		t.Errorf("failed add changed root: %v", root.Keys())
	}
}
