package tag

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally equal. Lists compare in
// order; compounds compare by key regardless of insertion order. Floats
// compare by bit pattern so that NaN payloads round trip.
func Equal(a, b *Tag) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ByteType:
		return a.Byte == b.Byte
	case ShortType:
		return a.Short == b.Short
	case IntType:
		return a.Int == b.Int
	case LongType:
		return a.Long == b.Long
	case FloatType:
		return math.Float32bits(a.Float) == math.Float32bits(b.Float)
	case DoubleType:
		return math.Float64bits(a.Double) == math.Float64bits(b.Double)
	case StringType:
		return a.String == b.String
	case ByteArrayType:
		return slices.Equal(a.Bytes, b.Bytes)
	case IntArrayType:
		return slices.Equal(a.Ints, b.Ints)
	case ListType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case CompoundType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return true
}

// Equal is the method form of the package level Equal.
func (t *Tag) Equal(o *Tag) bool {
	return Equal(t, o)
}
