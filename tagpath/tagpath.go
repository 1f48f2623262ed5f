// Package tagpath reads and writes tags nested inside a root compound by
// a path of compound names.
//
//	tagpath.Set(root, tag.FromInt(0xFF0000), "display", "color")
//	color := tagpath.GetValue(root, int32(-1), "display", "color")
//	tagpath.Remove(root, "display", "color") // also drops "display" if now empty
//
// Missing intermediate compounds are created by Set and pruned by Remove.
// The root itself is never removed, and may become empty.
package tagpath

import (
	"fmt"

	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tag/kpath"
	"github.com/signadot/tagtree/tagmap"
)

func checkArgs(op string, root *tag.Tag, path []string) error {
	if len(path) == 0 {
		return &PathError{Op: op, Err: fmt.Errorf("%w: path should have at least one element", tag.ErrInvalidArgument)}
	}
	if root == nil {
		return &PathError{Op: op, Path: path, Err: fmt.Errorf("%w: root is nil", tag.ErrInvalidArgument)}
	}
	if root.Type != tag.CompoundType {
		return &PathError{Op: op, Path: path, Err: fmt.Errorf("%w: root is %s, not Compound", tag.ErrInvalidArgument, root.Type)}
	}
	return nil
}

// Get returns the tag at path below root, or nil if any segment is
// missing or an intermediate segment is not a compound. It never
// modifies root.
func Get(root *tag.Tag, path ...string) (*tag.Tag, error) {
	if err := checkArgs("get", root, path); err != nil {
		return nil, err
	}
	return lookup(root, path), nil
}

func lookup(root *tag.Tag, path []string) *tag.Tag {
	cur := root
	last := len(path) - 1
	for _, seg := range path[:last] {
		cur = cur.Get(seg)
		if cur == nil || cur.Type != tag.CompoundType {
			return nil
		}
	}
	return cur.Get(path[last])
}

// GetValue converts the tag at path to T, returning def if the path is
// absent, the arguments are invalid, or the tag does not convert to T.
func GetValue[T any](root *tag.Tag, def T, path ...string) T {
	t, err := Get(root, path...)
	if err != nil || t == nil {
		return def
	}
	v, err := tagmap.FromTag[T](t)
	if err != nil {
		if debug.Path() {
			debug.Logf("tagpath: get %s: %v, using default\n", kpath.Path(path), err)
		}
		return def
	}
	return v
}

// Has reports whether a tag exists at path below root.
func Has(root *tag.Tag, path ...string) bool {
	t, err := Get(root, path...)
	return err == nil && t != nil
}

// Set inserts or replaces the tag at path below root, creating empty
// compounds for missing intermediate segments. If an intermediate segment
// exists and is not a compound, Set fails with tag.ErrTypeMismatch and
// leaves root unchanged.
func Set(root *tag.Tag, t *tag.Tag, path ...string) error {
	if err := checkArgs("set", root, path); err != nil {
		return err
	}
	if t == nil {
		return &PathError{Op: "set", Path: path, Err: fmt.Errorf("%w: tag is nil", tag.ErrInvalidArgument)}
	}
	last := len(path) - 1
	// check the whole walk first so a failure creates nothing
	cur := root
	for i, seg := range path[:last] {
		cur = cur.Get(seg)
		if cur == nil {
			break
		}
		if cur.Type != tag.CompoundType {
			return &PathError{Op: "set", Path: path, Err: fmt.Errorf("%w: %s is %s, not Compound",
				tag.ErrTypeMismatch, kpath.Path(path[:i+1]), cur.Type)}
		}
	}
	cur = root
	for _, seg := range path[:last] {
		child := cur.Get(seg)
		if child == nil {
			child = tag.NewCompound()
			cur.Put(seg, child)
		}
		cur = child
	}
	p := kpath.Path(path)
	cur.Put(p.Last(), t)
	if debug.Path() {
		debug.Logf("tagpath: set %s = %v\n", p, t)
	}
	return nil
}

// SetValue converts v with tagmap.ToTag and sets the result at path.
func SetValue(root *tag.Tag, v any, path ...string) error {
	t, err := tagmap.ToTag(v)
	if err != nil {
		return &PathError{Op: "set", Path: path, Err: err}
	}
	return Set(root, t, path...)
}

type frame struct {
	parent *tag.Tag
	key    string
}

// Remove deletes the tag at path below root. Each compound along the path
// left empty by the removal is removed from its own parent in turn, up to
// but not including root. Removing an absent path does nothing.
func Remove(root *tag.Tag, path ...string) error {
	if err := checkArgs("remove", root, path); err != nil {
		return err
	}
	stack := make([]frame, 0, len(path))
	cur := root
	for i, seg := range path {
		stack = append(stack, frame{parent: cur, key: seg})
		if i == len(path)-1 {
			break
		}
		cur = cur.Get(seg)
		if cur == nil || cur.Type != tag.CompoundType {
			return nil
		}
	}
	top := stack[len(stack)-1]
	if !top.parent.Delete(top.key) {
		return nil
	}
	pruned := kpath.Path(path)
	if debug.Path() {
		debug.Logf("tagpath: remove %s\n", pruned)
	}
	for i := len(stack) - 1; i > 0; i-- {
		child := stack[i].parent
		if !child.IsEmpty() {
			break
		}
		up := stack[i-1]
		up.parent.Delete(up.key)
		pruned = pruned.Parent()
		if debug.Path() {
			debug.Logf("tagpath: pruned empty %s\n", pruned)
		}
	}
	return nil
}

// Add converts and inserts alternating name, value pairs directly into
// root, skipping nil values. On error root is left unchanged. See
// tagmap.AddToCompound.
func Add(root *tag.Tag, pairs ...any) error {
	if root == nil || root.Type != tag.CompoundType {
		return &PathError{Op: "add", Err: fmt.Errorf("%w: root is not a compound", tag.ErrInvalidArgument)}
	}
	if _, err := tagmap.AddToCompound(root, pairs...); err != nil {
		return &PathError{Op: "add", Err: err}
	}
	return nil
}
