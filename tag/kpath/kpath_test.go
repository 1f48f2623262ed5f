package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"a", Path{"a"}},
		{"display.color", Path{"display", "color"}},
		{`inventory."slot 3".count`, Path{"inventory", "slot 3", "count"}},
		{`"a.b"`, Path{"a.b"}},
		{`""`, Path{""}},
		{`"q\"x"`, Path{`q"x`}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
			if s := got.String(); s != tt.in {
				t.Errorf("String() = %q", s)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", ".", "a.", ".a", "a..b", `"open`, "a b", "x[0]"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected syntax error, got %v", in, err)
		}
	}
}

func TestJoin(t *testing.T) {
	p := Join("", "items")
	p = JoinIndex(p, 2)
	p = Join(p, "tag name")
	if p != `items[2]."tag name"` {
		t.Errorf("got %s", p)
	}
	path, err := Parse("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Path{"a", "b"}, path.Parent()); diff != "" {
		t.Error(diff)
	}
	if path.Last() != "c" {
		t.Error(path.Last())
	}
	if path.Parent().Parent().Parent() != nil || Path(nil).Last() != "" {
		t.Error("single segment parent")
	}
}
