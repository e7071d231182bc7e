package snbt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lodeworks/nbtkit/pkg/nbt"
)

// ErrSyntax is returned by [Parse] for any malformed input. The wrapped
// message carries the byte offset and a short description.
var ErrSyntax = errors.New("snbt syntax error")

// Parse converts a stringified document to a tag tree. The input must be a
// single value; trailing non-whitespace input is an error. Lists reject
// mixed element types, and nesting beyond [nbt.MaxDepth] fails with
// [nbt.ErrTooComplex], matching the binary decoder.
func Parse(s string) (nbt.Tag, error) {
	p := &parser{in: s}
	p.skipSpace()
	t, err := p.value(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return nil, p.errf("trailing input")
	}
	return t, nil
}

// ParseCompound is Parse restricted to a compound root.
func ParseCompound(s string) (*nbt.Compound, error) {
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: root is %s, want %s", ErrSyntax, t.ID(), nbt.IDCompound)
	}
	return c, nil
}

type parser struct {
	in  string
	pos int
}

func (p *parser) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, msg)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) {
		switch p.in[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.in) {
		return 0, false
	}
	return p.in[p.pos], true
}

// expect consumes c or fails.
func (p *parser) expect(c byte) error {
	got, ok := p.peek()
	if !ok {
		return p.errf("unexpected end of input, want %q", c)
	}
	if got != c {
		return p.errf("unexpected %q, want %q", got, c)
	}
	p.pos++
	return nil
}

func (p *parser) value(depth int) (nbt.Tag, error) {
	if depth > nbt.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", nbt.ErrTooComplex, depth, nbt.MaxDepth)
	}
	c, ok := p.peek()
	if !ok {
		return nil, p.errf("unexpected end of input")
	}
	switch c {
	case '{':
		return p.compound(depth)
	case '[':
		return p.listOrArray(depth)
	case '"', '\'':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return nbt.NewString(s), nil
	default:
		return p.scalar()
	}
}

func (p *parser) compound(depth int) (nbt.Tag, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	c := nbt.NewCompound()
	p.skipSpace()
	if b, ok := p.peek(); ok && b == '}' {
		p.pos++
		return c, nil
	}
	for {
		p.skipSpace()
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.skipSpace()
		t, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		c.Put(name, t)

		p.skipSpace()
		b, ok := p.peek()
		if !ok {
			return nil, p.errf("unterminated compound")
		}
		p.pos++
		if b == '}' {
			return c, nil
		}
		if b != ',' {
			p.pos--
			return nil, p.errf("unexpected %q in compound", b)
		}
	}
}

// name reads a compound key: quoted or a bare identifier.
func (p *parser) name() (string, error) {
	if b, ok := p.peek(); ok && (b == '"' || b == '\'') {
		return p.quoted()
	}
	start := p.pos
	for p.pos < len(p.in) && isBare(p.in[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf("missing compound key")
	}
	return p.in[start:p.pos], nil
}

func (p *parser) listOrArray(depth int) (nbt.Tag, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	// An array prefix is a single type letter followed by ';'.
	if p.pos+1 < len(p.in) && p.in[p.pos+1] == ';' {
		kind := p.in[p.pos]
		p.pos += 2
		return p.array(kind)
	}
	l := nbt.NewList()
	p.skipSpace()
	if b, ok := p.peek(); ok && b == ']' {
		p.pos++
		return l, nil
	}
	for {
		p.skipSpace()
		t, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if !l.Add(t) {
			return nil, p.errf("mixed tag types in list: %s and %s", l.ElementID(), t.ID())
		}
		p.skipSpace()
		b, ok := p.peek()
		if !ok {
			return nil, p.errf("unterminated list")
		}
		p.pos++
		if b == ']' {
			return l, nil
		}
		if b != ',' {
			p.pos--
			return nil, p.errf("unexpected %q in list", b)
		}
	}
}

func (p *parser) array(kind byte) (nbt.Tag, error) {
	var bytesOut []byte
	var intsOut []int32
	var longsOut []int64

	p.skipSpace()
	if b, ok := p.peek(); ok && b == ']' {
		p.pos++
	} else {
		for {
			p.skipSpace()
			t, err := p.scalar()
			if err != nil {
				return nil, err
			}
			switch kind {
			case 'B':
				v, ok := t.(*nbt.Byte)
				if !ok {
					return nil, p.errf("non-byte element in byte array")
				}
				bytesOut = append(bytesOut, byte(v.Value))
			case 'I':
				v, ok := t.(*nbt.Int)
				if !ok {
					return nil, p.errf("non-int element in int array")
				}
				intsOut = append(intsOut, v.Value)
			case 'L':
				v, ok := t.(*nbt.Long)
				if !ok {
					return nil, p.errf("non-long element in long array")
				}
				longsOut = append(longsOut, v.Value)
			default:
				return nil, p.errf("unknown array prefix %q", kind)
			}
			p.skipSpace()
			b, ok := p.peek()
			if !ok {
				return nil, p.errf("unterminated array")
			}
			p.pos++
			if b == ']' {
				break
			}
			if b != ',' {
				p.pos--
				return nil, p.errf("unexpected %q in array", b)
			}
		}
	}

	switch kind {
	case 'B':
		return nbt.NewByteArray(bytesOut), nil
	case 'I':
		return nbt.NewIntArray(intsOut), nil
	case 'L':
		return nbt.NewLongArray(longsOut), nil
	default:
		return nil, p.errf("unknown array prefix %q", kind)
	}
}

// quoted reads a single- or double-quoted string with backslash escapes.
func (p *parser) quoted() (string, error) {
	open := p.in[p.pos]
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		switch c {
		case open:
			p.pos++
			return sb.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.in) {
				return "", p.errf("dangling escape")
			}
			switch esc := p.in[p.pos]; esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(esc)
			}
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf("unterminated string")
}

// scalar reads a bare token and classifies it as a number or an unquoted
// string.
func (p *parser) scalar() (nbt.Tag, error) {
	start := p.pos
	for p.pos < len(p.in) && isBare(p.in[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		if p.pos >= len(p.in) {
			return nil, p.errf("unexpected end of input")
		}
		return nil, p.errf("unexpected %q", p.in[p.pos])
	}
	tok := p.in[start:p.pos]

	if t, ok := classifyNumber(tok); ok {
		return t, nil
	}
	switch tok {
	case "true":
		return nbt.NewByte(1), nil
	case "false":
		return nbt.NewByte(0), nil
	}
	return nbt.NewString(tok), nil
}

// isBare reports whether c may appear in an unquoted token.
func isBare(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.', c == '+':
		return true
	}
	return false
}

// classifyNumber maps a bare token to its scalar tag per the type-suffix
// rules. Tokens that parse as no number report ok=false and fall back to
// unquoted strings.
func classifyNumber(tok string) (nbt.Tag, bool) {
	if tok == "" {
		return nil, false
	}
	body, suffix := tok, byte(0)
	switch c := tok[len(tok)-1]; c {
	case 'b', 'B', 's', 'S', 'l', 'L', 'f', 'F', 'd', 'D':
		body, suffix = tok[:len(tok)-1], c|0x20 // lower-case the suffix
	}
	if body == "" {
		return nil, false
	}

	switch suffix {
	case 'b':
		v, err := strconv.ParseInt(body, 10, 8)
		if err != nil {
			return nil, false
		}
		return nbt.NewByte(int8(v)), true
	case 's':
		v, err := strconv.ParseInt(body, 10, 16)
		if err != nil {
			return nil, false
		}
		return nbt.NewShort(int16(v)), true
	case 'l':
		v, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return nil, false
		}
		return nbt.NewLong(v), true
	case 'f':
		v, err := strconv.ParseFloat(body, 32)
		if err != nil {
			return nil, false
		}
		return nbt.NewFloat(float32(v)), true
	case 'd':
		v, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, false
		}
		return nbt.NewDouble(v), true
	}

	// No suffix: integers become Int, anything with a decimal point or
	// exponent becomes Double.
	if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return nbt.NewInt(int32(v)), true
	}
	if strings.ContainsAny(tok, ".eE") {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return nbt.NewDouble(v), true
		}
	}
	return nil, false
}
