package tagmap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/tagtree/tag"
)

var (
	tagPtrType    = reflect.TypeFor[*tag.Tag]()
	serializerTyp = reflect.TypeFor[Serializer]()
)

// ToTag converts v to a tag. A *tag.Tag is returned unchanged, and a
// Serializer is converted by its own ToTag method.
func ToTag(v any) (*tag.Tag, error) {
	if isAbsent(v) {
		return nil, fmt.Errorf("%w: can't create a tag of nil", tag.ErrInvalidArgument)
	}
	switch x := v.(type) {
	case *tag.Tag:
		return x, nil
	case Serializer:
		return callToTag(x)
	case int8:
		return tag.FromByte(x), nil
	case uint8:
		return tag.FromByte(int8(x)), nil
	case bool:
		return tag.FromBool(x), nil
	case int16:
		return tag.FromShort(x), nil
	case int32:
		return tag.FromInt(x), nil
	case int64:
		return tag.FromLong(x), nil
	case int:
		return fromInt(int64(x)), nil
	case float32:
		return tag.FromFloat(x), nil
	case float64:
		return tag.FromDouble(x), nil
	case string:
		return tag.FromString(x), nil
	case []byte:
		return tag.FromByteArray(x), nil
	case []int32:
		return tag.FromIntArray(x), nil
	case []*tag.Tag:
		return tag.FromSlice(x)
	case map[string]*tag.Tag:
		return tag.FromMap(x), nil
	}
	return toTagReflect(reflect.ValueOf(v), "")
}

func callToTag(s Serializer) (*tag.Tag, error) {
	t, err := s.ToTag()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %T.ToTag returned nil", tag.ErrInvalidArgument, s)
	}
	return t, nil
}

func fromInt(v int64) *tag.Tag {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return tag.FromInt(int32(v))
	}
	return tag.FromLong(v)
}

// toTagReflect handles named types and generic collections. elem names
// the position of val inside an enclosing collection, for errors.
func toTagReflect(val reflect.Value, elem string) (*tag.Tag, error) {
	if !val.IsValid() {
		return nil, &UnsupportedTypeError{Elem: elem}
	}
	typ := val.Type()
	if typ == tagPtrType {
		if val.IsNil() {
			return nil, fmt.Errorf("%w: nil tag at %s", tag.ErrInvalidArgument, elem)
		}
		return val.Interface().(*tag.Tag), nil
	}
	if typ.Implements(serializerTyp) {
		if typ.Kind() == reflect.Pointer && val.IsNil() {
			return nil, fmt.Errorf("%w: nil %s at %s", tag.ErrInvalidArgument, typ, elem)
		}
		return callToTag(val.Interface().(Serializer))
	}
	if reflect.PointerTo(typ).Implements(serializerTyp) {
		if val.CanAddr() {
			return callToTag(val.Addr().Interface().(Serializer))
		}
		ptr := reflect.New(typ)
		ptr.Elem().Set(val)
		return callToTag(ptr.Interface().(Serializer))
	}

	switch typ.Kind() {
	case reflect.Int8:
		return tag.FromByte(int8(val.Int())), nil
	case reflect.Uint8:
		return tag.FromByte(int8(val.Uint())), nil
	case reflect.Bool:
		return tag.FromBool(val.Bool()), nil
	case reflect.Int16:
		return tag.FromShort(int16(val.Int())), nil
	case reflect.Int32:
		return tag.FromInt(int32(val.Int())), nil
	case reflect.Int64:
		return tag.FromLong(val.Int()), nil
	case reflect.Int:
		return fromInt(val.Int()), nil
	case reflect.Float32:
		return tag.FromFloat(float32(val.Float())), nil
	case reflect.Float64:
		return tag.FromDouble(val.Float()), nil
	case reflect.String:
		return tag.FromString(val.String()), nil
	case reflect.Slice, reflect.Array:
		return toTagReflectSlice(val, elem)
	case reflect.Map:
		return toTagReflectMap(val, elem)
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil, fmt.Errorf("%w: nil element at %s", tag.ErrInvalidArgument, elem)
		}
		return toTagReflect(val.Elem(), elem)
	}
	return nil, &UnsupportedTypeError{Elem: elem, Value: val.Interface()}
}

func toTagReflectSlice(val reflect.Value, elem string) (*tag.Tag, error) {
	n := val.Len()
	switch val.Type().Elem().Kind() {
	case reflect.Int8, reflect.Uint8:
		res := &tag.Tag{Type: tag.ByteArrayType, Bytes: make([]byte, n)}
		for i := range n {
			e := val.Index(i)
			if e.Kind() == reflect.Int8 {
				res.Bytes[i] = byte(e.Int())
			} else {
				res.Bytes[i] = byte(e.Uint())
			}
		}
		return res, nil
	case reflect.Int32:
		res := &tag.Tag{Type: tag.IntArrayType, Ints: make([]int32, n)}
		for i := range n {
			res.Ints[i] = int32(val.Index(i).Int())
		}
		return res, nil
	case reflect.Int:
		res := &tag.Tag{Type: tag.IntArrayType, Ints: make([]int32, n)}
		for i := range n {
			x := val.Index(i).Int()
			if x < math.MinInt32 || x > math.MaxInt32 {
				return nil, fmt.Errorf("%w: %d at %s[%d] overflows an int array",
					tag.ErrUnsupportedType, x, elem, i)
			}
			res.Ints[i] = int32(x)
		}
		return res, nil
	}
	res := tag.NewList()
	for i := range n {
		elemPath := fmt.Sprintf("%s[%d]", elem, i)
		t, err := toTagReflect(val.Index(i), elemPath)
		if err != nil {
			return nil, err
		}
		if err := res.Append(t); err != nil {
			return nil, fmt.Errorf("at %s: %w", elemPath, err)
		}
	}
	return res, nil
}

func toTagReflectMap(val reflect.Value, elem string) (*tag.Tag, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &UnsupportedTypeError{Elem: elem, Value: val.Interface()}
	}
	res := tag.NewCompound()
	iter := val.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		v := iter.Value()
		if isAbsentValue(v) {
			continue
		}
		t, err := toTagReflect(v, elem+"."+k)
		if err != nil {
			return nil, err
		}
		res.Put(k, t)
	}
	return res, nil
}

// isAbsent reports whether v is nil or a nil pointer.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	return isAbsentValue(reflect.ValueOf(v))
}

func isAbsentValue(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		return val.IsNil()
	}
	return false
}
