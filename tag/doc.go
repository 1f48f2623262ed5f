// Package tag provides the tagged-value tree: a closed set of typed leaf
// variants plus two containers, List and Compound.
//
// # Variants
//
// The Type field selects which payload slot of a Tag is meaningful:
//
//   - ByteType, ShortType, IntType, LongType: signed integers of 8, 16, 32
//     and 64 bits
//   - FloatType, DoubleType: 32 and 64 bit floating point
//   - StringType: text
//   - ByteArrayType, IntArrayType: packed sequences of int8 and int32
//   - ListType: ordered children, all of one variant (see Elem)
//   - CompoundType: children keyed by unique name
//
// Type ids follow the classic numbering, so Type(1) is ByteType and
// Type(11) is IntArrayType. EndType (0) never names a valid tag.
//
// # Ownership
//
// A tree is strict: every child is owned by exactly one parent and there
// are no parent pointers. Putting a tag under a second parent is a caller
// error; use Clone to copy a subtree.
//
// # Creating Tags
//
//	root := tag.NewCompound()
//	root.Put("name", tag.FromString("copygirl"))
//	root.Put("count", tag.FromShort(3))
//	list, err := tag.FromSlice([]*tag.Tag{tag.FromInt(1), tag.FromInt(2)})
//
// Paths through compounds are handled by package tagpath, and conversion
// between Go values and tags by package tagmap.
package tag
