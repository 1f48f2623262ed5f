// Package kpath implements the path value used to address a tag inside a
// tree of compounds, along with its dotted text form.
//
// A path is a non-empty sequence of compound names. In text, names are
// joined with '.', and a name that is empty or contains '.', '"', '[',
// ']', '\\' or whitespace is written double quoted:
//
//	display.color
//	inventory."slot 3".count
package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrSyntax = errors.New("kpath syntax error")

type Path []string

// Parse parses the dotted text form of a path.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	var res Path
	i := 0
	for {
		seg, n, err := parseSegment(s[i:])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d", err, i)
		}
		res = append(res, seg)
		i += n
		if i == len(s) {
			return res, nil
		}
		if s[i] != '.' {
			return nil, fmt.Errorf("%w: expected '.' at offset %d", ErrSyntax, i)
		}
		i++
		if i == len(s) {
			return nil, fmt.Errorf("%w: trailing '.'", ErrSyntax)
		}
	}
}

func parseSegment(s string) (string, int, error) {
	if s[0] != '"' {
		end := strings.IndexByte(s, '.')
		if end == -1 {
			end = len(s)
		}
		seg := s[:end]
		if seg == "" || NeedsQuote(seg) {
			return "", 0, fmt.Errorf("%w: bad field %q", ErrSyntax, seg)
		}
		return seg, end, nil
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 == len(s) {
				return "", 0, fmt.Errorf("%w: unterminated escape", ErrSyntax)
			}
			i++
			sb.WriteByte(s[i])
		case '"':
			return sb.String(), i + 1, nil
		default:
			sb.WriteByte(s[i])
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated quote", ErrSyntax)
}

// NeedsQuote reports whether field must be quoted in text form.
func NeedsQuote(field string) bool {
	if field == "" {
		return true
	}
	for _, r := range field {
		switch r {
		case '.', '"', '[', ']', '\\':
			return true
		}
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// QuoteField returns field as it appears in a path's text form.
func QuoteField(field string) string {
	if !NeedsQuote(field) {
		return field
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, f := range p {
		parts[i] = QuoteField(f)
	}
	return strings.Join(parts, ".")
}

// Join appends field to the text path prefix.
func Join(prefix, field string) string {
	if prefix == "" {
		return QuoteField(field)
	}
	return prefix + "." + QuoteField(field)
}

// JoinIndex appends a list position to the text path prefix. Index
// segments are display only; Parse does not accept them.
func JoinIndex(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// Parent returns p without its last segment, or nil for a single segment.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the final segment of p.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
