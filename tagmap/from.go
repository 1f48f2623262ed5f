package tagmap

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/tagtree/tag"
)

var (
	deserializerTyp = reflect.TypeFor[Deserializer]()
	anyType         = reflect.TypeFor[any]()
)

// FromTag extracts a value of type T from t. The variant of t must be the
// one T maps to; otherwise the error wraps tag.ErrTypeMismatch. If T or
// *T implements Deserializer, a new T is filled in by its FromTag method.
// Returned slices never alias t.
func FromTag[T any](t *tag.Tag) (T, error) {
	var res T
	if t == nil {
		return res, fmt.Errorf("%w: tag is nil", tag.ErrInvalidArgument)
	}
	switch p := any(&res).(type) {
	case *int8:
		if t.Type != tag.ByteType {
			return res, mismatch("int8", t)
		}
		*p = t.Byte
		return res, nil
	case *int16:
		if t.Type != tag.ShortType {
			return res, mismatch("int16", t)
		}
		*p = t.Short
		return res, nil
	case *int32:
		if t.Type != tag.IntType {
			return res, mismatch("int32", t)
		}
		*p = t.Int
		return res, nil
	case *int64:
		if t.Type != tag.LongType {
			return res, mismatch("int64", t)
		}
		*p = t.Long
		return res, nil
	case *float32:
		if t.Type != tag.FloatType {
			return res, mismatch("float32", t)
		}
		*p = t.Float
		return res, nil
	case *float64:
		if t.Type != tag.DoubleType {
			return res, mismatch("float64", t)
		}
		*p = t.Double
		return res, nil
	case *string:
		if t.Type != tag.StringType {
			return res, mismatch("string", t)
		}
		*p = t.String
		return res, nil
	case *[]byte:
		if t.Type != tag.ByteArrayType {
			return res, mismatch("[]byte", t)
		}
		*p = slices.Clone(t.Bytes)
		return res, nil
	case *[]int32:
		if t.Type != tag.IntArrayType {
			return res, mismatch("[]int32", t)
		}
		*p = slices.Clone(t.Ints)
		return res, nil
	case **tag.Tag:
		*p = t
		return res, nil
	}
	if err := fromTagReflect(t, reflect.ValueOf(&res).Elem()); err != nil {
		return res, err
	}
	return res, nil
}

// FromTagInto has dst read itself from t, and returns dst. dst is
// mutated in place; no new value is allocated.
func FromTagInto[D Deserializer](t *tag.Tag, dst D) (D, error) {
	if t == nil {
		return dst, fmt.Errorf("%w: tag is nil", tag.ErrInvalidArgument)
	}
	if isAbsent(dst) {
		return dst, fmt.Errorf("%w: destination is nil", tag.ErrInvalidArgument)
	}
	if err := dst.FromTag(t); err != nil {
		return dst, err
	}
	return dst, nil
}

func mismatch(expected string, t *tag.Tag) error {
	return &TypeError{Expected: expected, Actual: t.Type}
}

func fromTagReflect(t *tag.Tag, dst reflect.Value) error {
	typ := dst.Type()
	if typ == tagPtrType {
		dst.Set(reflect.ValueOf(t))
		return nil
	}
	if reflect.PointerTo(typ).Implements(deserializerTyp) {
		return dst.Addr().Interface().(Deserializer).FromTag(t)
	}
	if typ.Kind() == reflect.Pointer {
		elem := reflect.New(typ.Elem())
		if err := fromTagReflect(t, elem.Elem()); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}
	if typ == anyType {
		if v := ToAny(t); v != nil {
			dst.Set(reflect.ValueOf(v))
		}
		return nil
	}

	switch typ.Kind() {
	case reflect.Int8:
		if t.Type != tag.ByteType {
			return mismatch(typ.String(), t)
		}
		dst.SetInt(int64(t.Byte))
	case reflect.Uint8:
		if t.Type != tag.ByteType {
			return mismatch(typ.String(), t)
		}
		dst.SetUint(uint64(uint8(t.Byte)))
	case reflect.Bool:
		if t.Type != tag.ByteType {
			return mismatch(typ.String(), t)
		}
		dst.SetBool(t.Byte != 0)
	case reflect.Int16:
		if t.Type != tag.ShortType {
			return mismatch(typ.String(), t)
		}
		dst.SetInt(int64(t.Short))
	case reflect.Int32:
		if t.Type != tag.IntType {
			return mismatch(typ.String(), t)
		}
		dst.SetInt(int64(t.Int))
	case reflect.Int64:
		if t.Type != tag.LongType {
			return mismatch(typ.String(), t)
		}
		dst.SetInt(t.Long)
	case reflect.Int:
		switch t.Type {
		case tag.IntType:
			dst.SetInt(int64(t.Int))
		case tag.LongType:
			dst.SetInt(t.Long)
		default:
			return mismatch(typ.String(), t)
		}
	case reflect.Float32:
		if t.Type != tag.FloatType {
			return mismatch(typ.String(), t)
		}
		dst.SetFloat(float64(t.Float))
	case reflect.Float64:
		if t.Type != tag.DoubleType {
			return mismatch(typ.String(), t)
		}
		dst.SetFloat(t.Double)
	case reflect.String:
		if t.Type != tag.StringType {
			return mismatch(typ.String(), t)
		}
		dst.SetString(t.String)
	case reflect.Slice, reflect.Array:
		return fromTagReflectSeq(t, dst)
	case reflect.Map:
		return fromTagReflectMap(t, dst)
	default:
		return &UnsupportedTypeError{Value: dst.Interface(), FromTag: true}
	}
	return nil
}

// fromTagReflectSeq fills a slice, or an array of exactly the tag's
// length, from a ByteArray, IntArray or List.
func fromTagReflectSeq(t *tag.Tag, dst reflect.Value) error {
	typ := dst.Type()
	var want tag.Type
	switch typ.Elem().Kind() {
	case reflect.Int8, reflect.Uint8:
		want = tag.ByteArrayType
	case reflect.Int32, reflect.Int:
		want = tag.IntArrayType
	default:
		want = tag.ListType
	}
	if t.Type != want {
		return mismatch(typ.String(), t)
	}
	n := t.Len()
	var res reflect.Value
	if typ.Kind() == reflect.Array {
		if typ.Len() != n {
			return &TypeError{
				Expected: typ.String(),
				Actual:   t.Type,
				Message:  fmt.Sprintf("%s of length %d does not fit %s", t.Type, n, typ),
			}
		}
		res = reflect.New(typ).Elem()
	} else {
		res = reflect.MakeSlice(typ, n, n)
	}
	for i := range n {
		e := res.Index(i)
		switch want {
		case tag.ByteArrayType:
			if e.Kind() == reflect.Int8 {
				e.SetInt(int64(int8(t.Bytes[i])))
			} else {
				e.SetUint(uint64(t.Bytes[i]))
			}
		case tag.IntArrayType:
			e.SetInt(int64(t.Ints[i]))
		default:
			if err := fromTagReflect(t.Values[i], e); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}
	dst.Set(res)
	return nil
}

func fromTagReflectMap(t *tag.Tag, dst reflect.Value) error {
	typ := dst.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnsupportedTypeError{Value: dst.Interface(), FromTag: true}
	}
	if t.Type != tag.CompoundType {
		return mismatch(typ.String(), t)
	}
	res := reflect.MakeMapWithSize(typ, len(t.Fields))
	for k, v := range t.Fields {
		ev := reflect.New(typ.Elem()).Elem()
		if err := fromTagReflect(v, ev); err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
		res.SetMapIndex(reflect.ValueOf(k).Convert(typ.Key()), ev)
	}
	dst.Set(res)
	return nil
}

// ToAny returns a plain Go view of t: integers and floats keep their
// width, arrays become []byte and []int32, lists []any and compounds
// map[string]any.
func ToAny(t *tag.Tag) any {
	if t == nil {
		return nil
	}
	switch t.Type {
	case tag.ByteType:
		return t.Byte
	case tag.ShortType:
		return t.Short
	case tag.IntType:
		return t.Int
	case tag.LongType:
		return t.Long
	case tag.FloatType:
		return t.Float
	case tag.DoubleType:
		return t.Double
	case tag.StringType:
		return t.String
	case tag.ByteArrayType:
		return slices.Clone(t.Bytes)
	case tag.IntArrayType:
		return slices.Clone(t.Ints)
	case tag.ListType:
		res := make([]any, len(t.Values))
		for i, v := range t.Values {
			res[i] = ToAny(v)
		}
		return res
	case tag.CompoundType:
		res := make(map[string]any, len(t.Fields))
		for k, v := range t.Fields {
			res[k] = ToAny(v)
		}
		return res
	}
	return nil
}
