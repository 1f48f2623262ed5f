// Package tagmap converts between Go values and tags.
//
// Conversion is by explicit variant match: each supported Go type maps to
// exactly one tag variant and back.
//
//	int8, uint8      Byte
//	bool             Byte (0 or 1)
//	int16            Short
//	int32            Int
//	int              Int, or Long when it does not fit 32 bits
//	int64            Long
//	float32          Float
//	float64          Double
//	string           String
//	[]byte, []int8   ByteArray
//	[]int32, []int   IntArray
//	other slices     List, element-wise
//	map[string]V     Compound, entry-wise
//	*tag.Tag         itself
//
// Named types convert by their underlying kind. Types may take part in
// conversion by implementing Serializer and Deserializer, which take
// precedence over the table above.
//
//	node, err := tagmap.ToTag(int16(3))        // Short
//	n, err := tagmap.FromTag[int16](node)      // 3
//	_, err = tagmap.FromTag[string](node)      // wraps tag.ErrTypeMismatch
package tagmap

import "github.com/signadot/tagtree/tag"

// Serializer is implemented by values which write themselves as a tag.
type Serializer interface {
	ToTag() (*tag.Tag, error)
}

// Deserializer is implemented by values which read themselves from a tag,
// in place.
type Deserializer interface {
	FromTag(*tag.Tag) error
}

// Serializable is a value which converts in both directions.
type Serializable interface {
	Serializer
	Deserializer
}
