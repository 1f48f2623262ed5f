package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/tag"
)

var ErrParse = errors.New("parse error")

// Error locates a parse failure by byte offset.
type Error struct {
	Offset int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error at offset %d: %s: %v", e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}

func (e *Error) Unwrap() error {
	return e.Err
}

type parser struct {
	src []byte
	pos int
}

// Parse reads exactly one tag from d; only whitespace may follow it.
func Parse(d []byte) (*tag.Tag, error) {
	p := &parser{src: d}
	t, err := p.value()
	if err == nil {
		p.skipSpace()
		if p.pos != len(p.src) {
			err = p.errorf("trailing data")
		}
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		return nil, err
	}
	return t, nil
}

// ParseCompound is like Parse but requires the result to be a compound.
func ParseCompound(d []byte) (*tag.Tag, error) {
	t, err := Parse(d)
	if err != nil {
		return nil, err
	}
	if t.Type != tag.CompoundType {
		return nil, fmt.Errorf("%w: root is %s, not Compound", tag.ErrInvalidArgument, t.Type)
	}
	return t, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) expect(c byte) error {
	got, ok := p.peek()
	if !ok {
		return p.errorf("expected %q, got end of input", c)
	}
	if got != c {
		return p.errorf("expected %q, got %q", c, got)
	}
	p.pos++
	return nil
}

func (p *parser) value() (*tag.Tag, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch c {
	case '{':
		return p.compound()
	case '[':
		return p.list()
	case '"', '\'':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return tag.FromString(s), nil
	}
	start := p.pos
	word := p.bare()
	if word == "" {
		return nil, p.errorf("unexpected %q", c)
	}
	t, err := scalar(word)
	if err != nil {
		return nil, &Error{Offset: start, Msg: fmt.Sprintf("bad value %q", word), Err: err}
	}
	return t, nil
}

func (p *parser) bare() string {
	start := p.pos
	for p.pos < len(p.src) && encode.IsBareKeyByte(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) quoted() (string, error) {
	start := p.pos
	q := p.src[p.pos]
	i := p.pos + 1
	for i < len(p.src) {
		switch p.src[i] {
		case '\\':
			i += 2
			continue
		case q:
			raw := string(p.src[start : i+1])
			if q == '\'' {
				raw = `"` + strings.ReplaceAll(strings.ReplaceAll(raw[1:len(raw)-1], `\'`, `'`), `"`, `\"`) + `"`
			}
			s, err := strconv.Unquote(raw)
			if err != nil {
				return "", &Error{Offset: start, Msg: "bad string", Err: err}
			}
			p.pos = i + 1
			return s, nil
		}
		i++
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) compound() (*tag.Tag, error) {
	p.pos++ // '{'
	res := tag.NewCompound()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return res, nil
	}
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated compound")
		}
		var key string
		if c == '"' || c == '\'' {
			k, err := p.quoted()
			if err != nil {
				return nil, err
			}
			key = k
		} else {
			key = p.bare()
			if key == "" {
				return nil, p.errorf("expected key, got %q", c)
			}
		}
		if res.Has(key) {
			return nil, p.errorf("duplicate key %q", key)
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Put(key, v)
		c, ok = p.peek()
		if !ok {
			return nil, p.errorf("unterminated compound")
		}
		p.pos++
		switch c {
		case ',':
			continue
		case '}':
			return res, nil
		default:
			return nil, p.errorf("expected ',' or '}', got %q", c)
		}
	}
}

func (p *parser) list() (*tag.Tag, error) {
	p.pos++ // '['
	p.skipSpace()
	if p.pos+1 < len(p.src) && p.src[p.pos+1] == ';' {
		switch p.src[p.pos] {
		case 'B':
			p.pos += 2
			return p.array(tag.ByteArrayType)
		case 'I':
			p.pos += 2
			return p.array(tag.IntArrayType)
		default:
			return nil, p.errorf("unsupported array kind %q", p.src[p.pos])
		}
	}
	res := tag.NewList()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return res, nil
	}
	for {
		start := p.pos
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := res.Append(v); err != nil {
			return nil, &Error{Offset: start, Msg: "bad list element", Err: err}
		}
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated list")
		}
		p.pos++
		switch c {
		case ',':
			continue
		case ']':
			return res, nil
		default:
			return nil, p.errorf("expected ',' or ']', got %q", c)
		}
	}
}

func (p *parser) array(typ tag.Type) (*tag.Tag, error) {
	res := &tag.Tag{Type: typ}
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return res, nil
	}
	for {
		start := p.pos
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		switch {
		case typ == tag.ByteArrayType && v.Type == tag.ByteType:
			res.Bytes = append(res.Bytes, byte(v.Byte))
		case typ == tag.IntArrayType && v.Type == tag.IntType:
			res.Ints = append(res.Ints, v.Int)
		default:
			return nil, &Error{Offset: start, Msg: fmt.Sprintf("%s element in %s", v.Type, typ), Err: tag.ErrTypeMismatch}
		}
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated array")
		}
		p.pos++
		switch c {
		case ',':
			continue
		case ']':
			return res, nil
		default:
			return nil, p.errorf("expected ',' or ']', got %q", c)
		}
	}
}

// scalar interprets a bare word.
func scalar(word string) (*tag.Tag, error) {
	switch word {
	case "true":
		return tag.FromBool(true), nil
	case "false":
		return tag.FromBool(false), nil
	}
	last := word[len(word)-1]
	body := word[:len(word)-1]
	switch last {
	case 'b', 'B':
		if v, err := strconv.ParseInt(body, 10, 8); err == nil {
			return tag.FromByte(int8(v)), nil
		} else if isRange(err) {
			return nil, err
		}
	case 's', 'S':
		if v, err := strconv.ParseInt(body, 10, 16); err == nil {
			return tag.FromShort(int16(v)), nil
		} else if isRange(err) {
			return nil, err
		}
	case 'l', 'L':
		if v, err := strconv.ParseInt(body, 10, 64); err == nil {
			return tag.FromLong(v), nil
		} else if isRange(err) {
			return nil, err
		}
	case 'f', 'F':
		if v, err := strconv.ParseFloat(body, 32); err == nil {
			return tag.FromFloat(float32(v)), nil
		}
	case 'd', 'D':
		if v, err := strconv.ParseFloat(body, 64); err == nil {
			return tag.FromDouble(v), nil
		}
	}
	if v, err := strconv.ParseInt(word, 10, 32); err == nil {
		return tag.FromInt(int32(v)), nil
	} else if isRange(err) {
		return nil, err
	}
	if strings.ContainsAny(word, ".eE") {
		if v, err := strconv.ParseFloat(word, 64); err == nil {
			return tag.FromDouble(v), nil
		}
	}
	return tag.FromString(word), nil
}

func isRange(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}
