package libdiff

import (
	"fmt"
	"maps"
	"slices"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tag/kpath"
)

// DiffList aligns the elements of two lists by hash. A run of deletions
// directly followed by a run of insertions is paired up element by
// element and handed to df, so that an element changed in place is
// reported at its own depth.
func DiffList(dst []Change, path string, from, to *tag.Tag, df DiffFunc) []Change {
	hashRunes := map[uint64]rune{}
	fromRunes := mapValuesTo(hashRunes, from)
	toRunes := mapValuesTo(hashRunes, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(n, ins)
			for j := range paired {
				dst = df(dst, kpath.JoinIndex(path, fi+j), from.Values[fi+j], to.Values[ti+j])
			}
			for j := paired; j < n; j++ {
				dst = append(dst, Change{Op: Delete, Path: kpath.JoinIndex(path, fi+j), From: from.Values[fi+j]})
			}
			for j := paired; j < ins; j++ {
				dst = append(dst, Change{Op: Insert, Path: kpath.JoinIndex(path, ti+j), To: to.Values[ti+j]})
			}
			fi += n
			ti += ins
		case diffpatch.DiffInsert:
			for j := range n {
				dst = append(dst, Change{Op: Insert, Path: kpath.JoinIndex(path, ti+j), To: to.Values[ti+j]})
			}
			ti += n
		}
	}
	return dst
}

// mapValuesTo assigns each distinct element hash a rune, skipping the
// surrogate range so runes survive the string round trip inside the
// diff library.
func mapValuesTo(m map[uint64]rune, list *tag.Tag) []rune {
	rs := make([]rune, len(list.Values))
	for i, v := range list.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}

// DiffByKey diffs two lists of compounds by matching elements on the
// value of their key field rather than by position:
//
//	libdiff.DiffByKey(oldSlots, newSlots, indexed.IndexField)
//
// Paths are written key=value in place of a list position.
func DiffByKey(from, to *tag.Tag, key string) ([]Change, error) {
	fromMap, err := keyMap(from, key)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	toMap, err := keyMap(to, key)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	keys := slices.Collect(maps.Keys(fromMap))
	for k := range toMap {
		if _, ok := fromMap[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	var res []Change
	for _, k := range keys {
		res = diff(res, "["+key+"="+k+"]", fromMap[k], toMap[k])
	}
	return res, nil
}

func keyMap(list *tag.Tag, key string) (map[string]*tag.Tag, error) {
	if list == nil {
		return map[string]*tag.Tag{}, nil
	}
	if list.Type != tag.ListType {
		return nil, fmt.Errorf("%w: %s is not a List", tag.ErrTypeMismatch, list.Type)
	}
	res := make(map[string]*tag.Tag, len(list.Values))
	for i, v := range list.Values {
		kt := v.Get(key)
		if kt == nil || !kt.Type.IsLeaf() {
			return nil, fmt.Errorf("%w: element %d has no leaf %q", tag.ErrTypeMismatch, i, key)
		}
		ks := keyString(kt)
		if _, dup := res[ks]; dup {
			return nil, fmt.Errorf("%w: duplicate %s=%s", tag.ErrInvalidArgument, key, ks)
		}
		res[ks] = v
	}
	return res, nil
}
