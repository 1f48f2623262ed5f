package indexed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tagmap"
)

type stack struct {
	ID    string
	Count int8
}

func (s *stack) ToTag() (*tag.Tag, error) {
	return tagmap.BuildCompound("id", s.ID, "Count", s.Count)
}

func (s *stack) FromTag(t *tag.Tag) error {
	var err error
	if s.ID, err = tagmap.FromTag[string](t.Get("id")); err != nil {
		return err
	}
	s.Count, err = tagmap.FromTag[int8](t.Get("Count"))
	return err
}

func isEmpty(s *stack) bool { return s == nil }

func writeStack(s *stack) (*tag.Tag, error) { return s.ToTag() }

func readStack(t *tag.Tag) (*stack, error) {
	s := &stack{}
	if err := s.FromTag(t); err != nil {
		return nil, err
	}
	return s, nil
}

func TestRoundTrip(t *testing.T) {
	items := make([]*stack, 5)
	items[0] = &stack{ID: "stone", Count: 64}
	items[3] = &stack{ID: "apple", Count: 3}
	list, err := Write(items, isEmpty, writeStack)
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", list.Len())
	}
	first := list.At(0)
	if idx := first.Get(IndexField); idx.Type != tag.ShortType || idx.Short != 0 {
		t.Errorf("index field %+v", idx)
	}
	if first.Get(PayloadField).Type != tag.CompoundType {
		t.Error("payload is not a compound")
	}
	got, err := Read(list, make([]*stack, 5), readStack, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Error(diff)
	}
}

func TestOverflow(t *testing.T) {
	items := make([]*stack, 5)
	items[1] = &stack{ID: "a", Count: 1}
	items[4] = &stack{ID: "b", Count: 2}
	list, err := Write(items, isEmpty, writeStack)
	if err != nil {
		t.Fatal(err)
	}
	var over []*stack
	got, err := Read(list, make([]*stack, 3), readStack, func(s *stack) { over = append(over, s) })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*stack{nil, {ID: "a", Count: 1}, nil}, got); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]*stack{{ID: "b", Count: 2}}, over); diff != "" {
		t.Error(diff)
	}
	// nil overflow drops
	if _, err := Read(list, make([]*stack, 3), readStack, nil); err != nil {
		t.Error(err)
	}
}

func TestReadNegativeIndex(t *testing.T) {
	entry := tag.NewCompound()
	entry.Put(IndexField, tag.FromShort(-1))
	list, _ := tag.FromSlice([]*tag.Tag{entry})
	n := 0
	got, err := Read(list, make([]*tag.Tag, 2), func(t *tag.Tag) (*tag.Tag, error) { return t, nil }, func(*tag.Tag) { n++ })
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != nil || got[1] != nil || n != 1 {
		t.Errorf("negative index not diverted: %v %d", got, n)
	}
}

func TestBadEntries(t *testing.T) {
	noIndex := tag.NewCompound()
	strIndex := tag.NewCompound()
	strIndex.Put(IndexField, tag.FromString("0"))
	badPayload := tag.NewCompound()
	badPayload.Put(IndexField, tag.FromShort(0))
	badPayload.Put(PayloadField, tag.FromInt(1))
	tests := []struct {
		name string
		list *tag.Tag
	}{
		{"not a list", tag.NewCompound()},
		{"nil", nil},
		{"entry not compound", mustList(tag.FromInt(1))},
		{"nil entry", &tag.Tag{Type: tag.ListType, Elem: tag.CompoundType, Values: []*tag.Tag{nil}}},
		{"no index", mustList(noIndex)},
		{"string index", mustList(strIndex)},
		{"payload not compound", mustList(badPayload)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.list, make([]*tag.Tag, 2), func(t *tag.Tag) (*tag.Tag, error) { return t, nil }, nil)
			if !errors.Is(err, tag.ErrTypeMismatch) {
				t.Errorf("expected type mismatch, got %v", err)
			}
		})
	}
}

func mustList(ts ...*tag.Tag) *tag.Tag {
	l, err := tag.FromSlice(ts)
	if err != nil {
		panic(err)
	}
	return l
}

func TestWriteErrors(t *testing.T) {
	_, err := Write([]int{1}, func(int) bool { return false }, func(int) (*tag.Tag, error) { return tag.FromInt(1), nil })
	if !errors.Is(err, tag.ErrTypeMismatch) {
		t.Errorf("non-compound payload: %v", err)
	}
	_, err = Write(make([]int, MaxCapacity+1), func(int) bool { return true }, func(int) (*tag.Tag, error) { return nil, nil })
	if !errors.Is(err, tag.ErrInvalidArgument) {
		t.Errorf("capacity: %v", err)
	}
}

func TestPayload(t *testing.T) {
	empty, err := WritePayload(nil, true, true)
	if err != nil || empty.Type != tag.CompoundType || !empty.IsEmpty() {
		t.Errorf("empty as compound: %v %v", empty, err)
	}
	none, err := WritePayload(nil, true, false)
	if err != nil || none != nil {
		t.Errorf("empty as nil: %v %v", none, err)
	}
	pt, err := WritePayload(&stack{ID: "x", Count: 1}, false, false)
	if err != nil {
		t.Fatal(err)
	}
	var s stack
	ok, err := ReadPayload(pt, &s)
	if err != nil || !ok {
		t.Fatalf("read: %v %v", ok, err)
	}
	if diff := cmp.Diff(stack{ID: "x", Count: 1}, s); diff != "" {
		t.Error(diff)
	}
	s2 := stack{ID: "untouched"}
	ok, err = ReadPayload(empty, &s2)
	if err != nil || ok || s2.ID != "untouched" {
		t.Errorf("empty read: %v %v %+v", ok, err, s2)
	}
}
