package debug

import (
	"testing"

	"github.com/signadot/tagtree/tag"
)

func TestRender(t *testing.T) {
	c := tag.NewCompound()
	c.Put("n", tag.FromShort(3))
	var nilTag *tag.Tag
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"tag", c, "{n:3s}"},
		{"nil tag", nilTag, "<nil tag>"},
		{"slice", []any{1}, "[\n   |  1\n   |]"},
		{"int", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.in); got != tt.want {
				t.Errorf("got %#v want %#v", got, tt.want)
			}
		})
	}
}
