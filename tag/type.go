package tag

import "fmt"

type Type int

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
)

var typeNames = map[Type]string{
	EndType:       "End",
	ByteType:      "Byte",
	ShortType:     "Short",
	IntType:       "Int",
	LongType:      "Long",
	FloatType:     "Float",
	DoubleType:    "Double",
	ByteArrayType: "ByteArray",
	StringType:    "String",
	ListType:      "List",
	CompoundType:  "Compound",
	IntArrayType:  "IntArray",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if tt == EndType {
			continue
		}
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types returns every valid variant, in id order.
func Types() []Type {
	return []Type{
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
	}
}

func (t Type) Valid() bool {
	return t > EndType && t <= IntArrayType
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, CompoundType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumeric() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType, FloatType, DoubleType:
		return true
	default:
		return false
	}
}
