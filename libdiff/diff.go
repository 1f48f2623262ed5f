package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tag/kpath"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

// Change is one difference. Path is the text path of the changed tag,
// with list positions written [i]; for list insertions it is the position
// in the new list, otherwise the position in the old one.
type Change struct {
	Op   Op
	Path string
	From *tag.Tag
	To   *tag.Tag
}

func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "<root>"
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", path, encode.MustString(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", path, encode.MustString(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", path, encode.MustString(c.From), encode.MustString(c.To))
	}
}

// DiffFunc diffs two tags found at path, appending to dst.
type DiffFunc func(dst []Change, path string, from, to *tag.Tag) []Change

// Diff returns the changes turning from into to, in path order. Equal
// trees give no changes.
func Diff(from, to *tag.Tag) []Change {
	res := diff(nil, "", from, to)
	if debug.Diff() {
		debug.Logf("libdiff: %d changes\n", len(res))
	}
	return res
}

func diff(dst []Change, path string, from, to *tag.Tag) []Change {
	switch {
	case from == nil && to == nil:
		return dst
	case from == nil:
		return append(dst, Change{Op: Insert, Path: path, To: to})
	case to == nil:
		return append(dst, Change{Op: Delete, Path: path, From: from})
	case from.Type != to.Type:
		return append(dst, Change{Op: Replace, Path: path, From: from, To: to})
	}
	switch from.Type {
	case tag.CompoundType:
		return DiffCompound(dst, path, from, to, diff)
	case tag.ListType:
		return DiffList(dst, path, from, to, diff)
	}
	if !tag.Equal(from, to) {
		dst = append(dst, Change{Op: Replace, Path: path, From: from, To: to})
	}
	return dst
}

// DiffCompound diffs two compounds key by key, in sorted key order,
// calling df on keys present in both.
func DiffCompound(dst []Change, path string, from, to *tag.Tag, df DiffFunc) []Change {
	keys := from.Keys()
	for _, k := range to.Keys() {
		if !from.Has(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		dst = df(dst, kpath.Join(path, k), from.Get(k), to.Get(k))
	}
	return dst
}
