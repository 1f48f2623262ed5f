package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tagtree/tag"
)

func mustList(ts ...*tag.Tag) *tag.Tag {
	l, err := tag.FromSlice(ts)
	if err != nil {
		panic(err)
	}
	return l
}

func compound(kvs ...any) *tag.Tag {
	c := tag.NewCompound()
	for i := 0; i < len(kvs); i += 2 {
		c.Put(kvs[i].(string), kvs[i+1].(*tag.Tag))
	}
	return c
}

func strs(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.String()
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to *tag.Tag
		want     []string
	}{
		{
			name: "equal",
			from: compound("a", tag.FromInt(1)),
			to:   compound("a", tag.FromInt(1)),
			want: []string{},
		},
		{
			name: "replace leaf",
			from: compound("a", tag.FromInt(1)),
			to:   compound("a", tag.FromInt(2)),
			want: []string{"~ a: 1 -> 2"},
		},
		{
			name: "type change",
			from: compound("a", tag.FromInt(1)),
			to:   compound("a", tag.FromShort(1)),
			want: []string{"~ a: 1 -> 1s"},
		},
		{
			name: "insert and delete keys",
			from: compound("a", tag.FromInt(1), "b", tag.FromInt(2)),
			to:   compound("b", tag.FromInt(2), "c", compound("d", tag.FromByte(1))),
			want: []string{"- a: 1", "+ c: {d:1b}"},
		},
		{
			name: "nested",
			from: compound("display", compound("color", tag.FromInt(1))),
			to:   compound("display", compound("color", tag.FromInt(2))),
			want: []string{"~ display.color: 1 -> 2"},
		},
		{
			name: "list insert",
			from: compound("l", mustList(tag.FromInt(1), tag.FromInt(3))),
			to:   compound("l", mustList(tag.FromInt(1), tag.FromInt(2), tag.FromInt(3))),
			want: []string{"+ l[1]: 2"},
		},
		{
			name: "list delete",
			from: compound("l", mustList(tag.FromInt(1), tag.FromInt(2), tag.FromInt(3))),
			to:   compound("l", mustList(tag.FromInt(1), tag.FromInt(3))),
			want: []string{"- l[1]: 2"},
		},
		{
			name: "list element changed in place",
			from: compound("l", mustList(compound("id", tag.FromInt(1), "n", tag.FromByte(1)))),
			to:   compound("l", mustList(compound("id", tag.FromInt(1), "n", tag.FromByte(2)))),
			want: []string{"~ l[0].n: 1b -> 2b"},
		},
		{
			name: "root type change",
			from: tag.FromInt(1),
			to:   tag.FromString("x"),
			want: []string{`~ <root>: 1 -> "x"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(Diff(tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func slot(index int16, id string) *tag.Tag {
	return compound("index", tag.FromShort(index), "stack", compound("id", tag.FromString(id)))
}

func TestDiffByKey(t *testing.T) {
	from := mustList(slot(0, "stone"), slot(3, "apple"))
	to := mustList(slot(3, "pear"), slot(5, "stick"))
	got, err := DiffByKey(from, to, "index")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"- [index=0]: {index:0s,stack:{id:\"stone\"}}",
		"~ [index=3].stack.id: \"apple\" -> \"pear\"",
		"+ [index=5]: {index:5s,stack:{id:\"stick\"}}",
	}
	if diff := cmp.Diff(want, strs(got)); diff != "" {
		t.Error(diff)
	}

	if _, err := DiffByKey(mustList(slot(1, "a"), slot(1, "b")), nil, "index"); !errors.Is(err, tag.ErrInvalidArgument) {
		t.Errorf("duplicate key: %v", err)
	}
	if _, err := DiffByKey(mustList(compound("other", tag.FromInt(1))), nil, "index"); !errors.Is(err, tag.ErrTypeMismatch) {
		t.Errorf("missing key: %v", err)
	}
	if _, err := DiffByKey(tag.FromInt(1), nil, "index"); !errors.Is(err, tag.ErrTypeMismatch) {
		t.Errorf("non-list: %v", err)
	}
}
