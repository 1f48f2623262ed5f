package tagmap

import (
	"fmt"
	"iter"

	"github.com/signadot/tagtree/tag"
)

// BuildList converts each of values and appends it to a new List. Nil
// values are omitted.
func BuildList(values ...any) (*tag.Tag, error) {
	return AppendList(tag.NewList(), values...)
}

// AppendList converts each of values and appends it to list. Nil values
// are omitted. If any value fails to convert or does not match the
// list's element variant, list is left unchanged.
func AppendList(list *tag.Tag, values ...any) (*tag.Tag, error) {
	if list == nil || list.Type != tag.ListType {
		return nil, fmt.Errorf("%w: append to non-list", tag.ErrInvalidArgument)
	}
	elem := list.Elem
	ts := make([]*tag.Tag, 0, len(values))
	for i, v := range values {
		if isAbsent(v) {
			continue
		}
		t, err := ToTag(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		if elem != tag.EndType && t.Type != elem {
			return nil, fmt.Errorf("value %d: %w: append %s to list of %s", i, tag.ErrTypeMismatch, t.Type, elem)
		}
		elem = t.Type
		ts = append(ts, t)
	}
	for _, t := range ts {
		if err := list.Append(t); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// BuildCompound creates a Compound from alternating name, value pairs:
//
//	tagmap.BuildCompound("id", int16(1), "name", "copygirl")
//
// Pairs whose value is nil are omitted.
func BuildCompound(pairs ...any) (*tag.Tag, error) {
	return AddToCompound(tag.NewCompound(), pairs...)
}

// AddToCompound converts and inserts alternating name, value pairs into
// compound, replacing existing entries. Pairs whose value is nil are
// omitted. Every value is converted before any is inserted, so on error
// compound is left unchanged.
func AddToCompound(compound *tag.Tag, pairs ...any) (*tag.Tag, error) {
	if compound == nil || compound.Type != tag.CompoundType {
		return nil, fmt.Errorf("%w: add to non-compound", tag.ErrInvalidArgument)
	}
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of name/value arguments (%d)", tag.ErrInvalidArgument, len(pairs))
	}
	names := make([]string, 0, len(pairs)/2)
	ts := make([]*tag.Tag, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: name at %d is %T, not string", tag.ErrInvalidArgument, i, pairs[i])
		}
		if isAbsent(pairs[i+1]) {
			continue
		}
		t, err := ToTag(pairs[i+1])
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", name, err)
		}
		names = append(names, name)
		ts = append(ts, t)
	}
	for i, name := range names {
		compound.Put(name, ts[i])
	}
	return compound, nil
}

// Values returns a sequence converting each element of list to T, in
// order. Each iteration walks list from the start. A conversion error is
// yielded with the zero T, and iteration continues if the caller does.
// A nil or non-list tag yields one error.
func Values[T any](list *tag.Tag) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if list == nil || list.Type != tag.ListType {
			var zero T
			actual := tag.EndType
			if list != nil {
				actual = list.Type
			}
			yield(zero, &TypeError{Expected: "List", Actual: actual})
			return
		}
		for i := 0; i < len(list.Values); i++ {
			v, err := FromTag[T](list.Values[i])
			if err != nil {
				err = fmt.Errorf("element %d: %w", i, err)
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// Collect deserializes every element of list into a fresh value from
// newValue.
func Collect[D Deserializer](list *tag.Tag, newValue func() D) ([]D, error) {
	if list == nil || list.Type != tag.ListType {
		return nil, fmt.Errorf("%w: collect from non-list", tag.ErrInvalidArgument)
	}
	res := make([]D, 0, len(list.Values))
	for i, t := range list.Values {
		d, err := FromTagInto(t, newValue())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res = append(res, d)
	}
	return res, nil
}
