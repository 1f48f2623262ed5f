package tag

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Tag is a node of a tagged-value tree. Only the payload slot selected by
// Type is meaningful; the others are left zero.
type Tag struct {
	Type Type

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string
	Bytes  []byte
	Ints   []int32

	// Elem is the variant shared by every element of a List, EndType
	// while the list is empty.
	Elem   Type
	Values []*Tag

	Fields map[string]*Tag
}

func FromByte(v int8) *Tag {
	return &Tag{Type: ByteType, Byte: v}
}

// FromBool stores v as a Byte holding 0 or 1.
func FromBool(v bool) *Tag {
	if v {
		return FromByte(1)
	}
	return FromByte(0)
}

func FromShort(v int16) *Tag {
	return &Tag{Type: ShortType, Short: v}
}

func FromInt(v int32) *Tag {
	return &Tag{Type: IntType, Int: v}
}

func FromLong(v int64) *Tag {
	return &Tag{Type: LongType, Long: v}
}

func FromFloat(v float32) *Tag {
	return &Tag{Type: FloatType, Float: v}
}

func FromDouble(v float64) *Tag {
	return &Tag{Type: DoubleType, Double: v}
}

func FromString(v string) *Tag {
	return &Tag{Type: StringType, String: v}
}

// FromByteArray copies v into a new ByteArray tag.
func FromByteArray(v []byte) *Tag {
	return &Tag{Type: ByteArrayType, Bytes: slices.Clone(v)}
}

// FromIntArray copies v into a new IntArray tag.
func FromIntArray(v []int32) *Tag {
	return &Tag{Type: IntArrayType, Ints: slices.Clone(v)}
}

func NewList() *Tag {
	return &Tag{Type: ListType}
}

func NewCompound() *Tag {
	return &Tag{Type: CompoundType, Fields: map[string]*Tag{}}
}

// FromSlice creates a List holding ts. The elements are not copied.
func FromSlice(ts []*Tag) (*Tag, error) {
	res := &Tag{Type: ListType, Values: make([]*Tag, 0, len(ts))}
	for _, t := range ts {
		if err := res.Append(t); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FromMap creates a Compound holding the entries of m. Nil entries are
// skipped; the tags themselves are not copied.
func FromMap(m map[string]*Tag) *Tag {
	res := &Tag{Type: CompoundType, Fields: make(map[string]*Tag, len(m))}
	for k, v := range m {
		if v == nil {
			continue
		}
		res.Fields[k] = v
	}
	return res
}

// Len returns the number of children of a List or Compound, and the
// element count of a ByteArray or IntArray.
func (t *Tag) Len() int {
	switch t.Type {
	case ListType:
		return len(t.Values)
	case CompoundType:
		return len(t.Fields)
	case ByteArrayType:
		return len(t.Bytes)
	case IntArrayType:
		return len(t.Ints)
	}
	return 0
}

func (t *Tag) IsEmpty() bool {
	return t.Len() == 0
}

// Get returns the child named name of a Compound, or nil.
func (t *Tag) Get(name string) *Tag {
	if t == nil || t.Type != CompoundType {
		return nil
	}
	return t.Fields[name]
}

func (t *Tag) Has(name string) bool {
	return t.Get(name) != nil
}

// Put inserts or replaces the child named name. It panics if t is not a
// Compound or v is nil.
func (t *Tag) Put(name string, v *Tag) {
	if t.Type != CompoundType {
		panic(fmt.Sprintf("tag: Put on %s", t.Type))
	}
	if v == nil {
		panic("tag: Put of nil tag")
	}
	if t.Fields == nil {
		t.Fields = map[string]*Tag{}
	}
	t.Fields[name] = v
}

// Delete removes the child named name, reporting whether it existed.
func (t *Tag) Delete(name string) bool {
	if t.Type != CompoundType {
		return false
	}
	if _, ok := t.Fields[name]; !ok {
		return false
	}
	delete(t.Fields, name)
	return true
}

// Keys returns the names of a Compound's children in sorted order.
func (t *Tag) Keys() []string {
	if t.Type != CompoundType {
		return nil
	}
	return slices.Sorted(maps.Keys(t.Fields))
}

// All returns the entries of a Compound in sorted key order. It yields
// nothing for other variants.
//
//	for name, child := range root.All() {
//		...
//	}
func (t *Tag) All() iter.Seq2[string, *Tag] {
	return func(yield func(string, *Tag) bool) {
		for _, k := range t.Keys() {
			v, ok := t.Fields[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Append adds v to the end of a List. Every element of a list must share
// one variant.
func (t *Tag) Append(v *Tag) error {
	if t.Type != ListType {
		return fmt.Errorf("%w: append to %s", ErrTypeMismatch, t.Type)
	}
	if v == nil {
		return fmt.Errorf("%w: append of nil tag", ErrInvalidArgument)
	}
	if t.Elem != EndType && v.Type != t.Elem {
		return fmt.Errorf("%w: append %s to list of %s", ErrTypeMismatch, v.Type, t.Elem)
	}
	t.Elem = v.Type
	t.Values = append(t.Values, v)
	return nil
}

// At returns element i of a List, or nil if i is out of range.
func (t *Tag) At(i int) *Tag {
	if t.Type != ListType || i < 0 || i >= len(t.Values) {
		return nil
	}
	return t.Values[i]
}

func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	res := &Tag{}
	return t.CloneTo(res)
}

// CloneTo deep copies t into dst and returns dst.
func (t *Tag) CloneTo(dst *Tag) *Tag {
	*dst = Tag{
		Type:   t.Type,
		Byte:   t.Byte,
		Short:  t.Short,
		Int:    t.Int,
		Long:   t.Long,
		Float:  t.Float,
		Double: t.Double,
		String: t.String,
		Elem:   t.Elem,
	}
	if t.Bytes != nil {
		dst.Bytes = slices.Clone(t.Bytes)
	}
	if t.Ints != nil {
		dst.Ints = slices.Clone(t.Ints)
	}
	if t.Values != nil {
		dst.Values = make([]*Tag, len(t.Values))
		for i, v := range t.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if t.Fields != nil {
		dst.Fields = make(map[string]*Tag, len(t.Fields))
		for k, v := range t.Fields {
			dst.Fields[k] = v.Clone()
		}
	}
	return dst
}

// Visit calls f on t and then, if f returns true, on each child in order
// (list order, or sorted key order for compounds), followed by a second
// call on t with isPost set.
func (t *Tag) Visit(f func(t *Tag, isPost bool) (bool, error)) error {
	dive, err := f(t, false)
	if err != nil {
		return err
	}
	if dive {
		switch t.Type {
		case ListType:
			for _, v := range t.Values {
				if err := v.Visit(f); err != nil {
					return err
				}
			}
		case CompoundType:
			for _, v := range t.All() {
				if err := v.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(t, true); err != nil {
		return err
	}
	return nil
}
