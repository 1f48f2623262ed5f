package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/tagtree/tag"
)

type EncState struct {
	depth, indent int
	compact       bool

	Color func(tag.Type, ColorAttr, string) string
}

func Encode(t *tag.Tag, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if t == nil {
		return fmt.Errorf("%w: encode of nil tag", tag.ErrInvalidArgument)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(t, buf, es); err != nil {
		return err
	}
	if !es.compact {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func MustString(t *tag.Tag) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, EncodeCompact(true)); err != nil {
		panic(err)
	}
	return buf.String()
}

func (es *EncState) color(t tag.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) newline(buf *bytes.Buffer) {
	if es.compact {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func encode(t *tag.Tag, buf *bytes.Buffer, es *EncState) error {
	switch t.Type {
	case tag.ByteType:
		writeNumber(buf, es, t.Type, strconv.FormatInt(int64(t.Byte), 10), "b")
	case tag.ShortType:
		writeNumber(buf, es, t.Type, strconv.FormatInt(int64(t.Short), 10), "s")
	case tag.IntType:
		writeNumber(buf, es, t.Type, strconv.FormatInt(int64(t.Int), 10), "")
	case tag.LongType:
		writeNumber(buf, es, t.Type, strconv.FormatInt(t.Long, 10), "L")
	case tag.FloatType:
		writeNumber(buf, es, t.Type, strconv.FormatFloat(float64(t.Float), 'g', -1, 32), "f")
	case tag.DoubleType:
		writeNumber(buf, es, t.Type, strconv.FormatFloat(t.Double, 'g', -1, 64), "d")
	case tag.StringType:
		buf.WriteString(es.color(t.Type, ValueColor, strconv.Quote(t.String)))
	case tag.ByteArrayType:
		buf.WriteString(es.color(t.Type, SepColor, "[B;"))
		for i, b := range t.Bytes {
			if i > 0 {
				writeComma(buf, es, t.Type)
			}
			writeNumber(buf, es, tag.ByteType, strconv.FormatInt(int64(int8(b)), 10), "b")
		}
		buf.WriteString(es.color(t.Type, SepColor, "]"))
	case tag.IntArrayType:
		buf.WriteString(es.color(t.Type, SepColor, "[I;"))
		for i, v := range t.Ints {
			if i > 0 {
				writeComma(buf, es, t.Type)
			}
			writeNumber(buf, es, tag.IntType, strconv.FormatInt(int64(v), 10), "")
		}
		buf.WriteString(es.color(t.Type, SepColor, "]"))
	case tag.ListType:
		return encodeList(t, buf, es)
	case tag.CompoundType:
		return encodeCompound(t, buf, es)
	default:
		return fmt.Errorf("%w: can't encode tag of type %s", tag.ErrInvalidArgument, t.Type)
	}
	return nil
}

func writeNumber(buf *bytes.Buffer, es *EncState, typ tag.Type, digits, suffix string) {
	buf.WriteString(es.color(typ, ValueColor, digits))
	if suffix != "" {
		buf.WriteString(es.color(typ, SuffixColor, suffix))
	}
}

func writeComma(buf *bytes.Buffer, es *EncState, typ tag.Type) {
	buf.WriteString(es.color(typ, SepColor, ","))
	if !es.compact {
		buf.WriteByte(' ')
	}
}

func encodeList(t *tag.Tag, buf *bytes.Buffer, es *EncState) error {
	buf.WriteString(es.color(t.Type, SepColor, "["))
	if len(t.Values) == 0 {
		buf.WriteString(es.color(t.Type, SepColor, "]"))
		return nil
	}
	// lists of leaves stay on one line
	multi := !t.Elem.IsLeaf()
	if multi {
		es.depth++
	}
	for i, v := range t.Values {
		if i > 0 {
			buf.WriteString(es.color(t.Type, SepColor, ","))
			if !multi && !es.compact {
				buf.WriteByte(' ')
			}
		}
		if multi {
			es.newline(buf)
		}
		if err := encode(v, buf, es); err != nil {
			return err
		}
	}
	if multi {
		es.depth--
		es.newline(buf)
	}
	buf.WriteString(es.color(t.Type, SepColor, "]"))
	return nil
}

func encodeCompound(t *tag.Tag, buf *bytes.Buffer, es *EncState) error {
	buf.WriteString(es.color(t.Type, SepColor, "{"))
	if len(t.Fields) == 0 {
		buf.WriteString(es.color(t.Type, SepColor, "}"))
		return nil
	}
	es.depth++
	first := true
	for k, v := range t.All() {
		if !first {
			buf.WriteString(es.color(t.Type, SepColor, ","))
		}
		first = false
		es.newline(buf)
		buf.WriteString(es.color(t.Type, FieldColor, QuoteKey(k)))
		buf.WriteString(es.color(t.Type, SepColor, ":"))
		if !es.compact {
			buf.WriteByte(' ')
		}
		if err := encode(v, buf, es); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	es.depth--
	es.newline(buf)
	buf.WriteString(es.color(t.Type, SepColor, "}"))
	return nil
}

// QuoteKey returns k as written for a compound key: bare when it only
// holds letters, digits and "_-.+", quoted otherwise.
func QuoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		if !IsBareKeyByte(k[i]) {
			return strconv.Quote(k)
		}
	}
	return k
}

func IsBareKeyByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.', c == '+':
		return true
	}
	return false
}
