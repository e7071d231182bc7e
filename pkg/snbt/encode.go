package snbt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lodeworks/nbtkit/pkg/nbt"
)

// Encode renders a tag tree as a single-line stringified document.
func Encode(t nbt.Tag) (string, error) {
	return EncodeIndent(t, "")
}

// EncodeIndent renders a tag tree with one entry per line, nested levels
// indented by repetitions of indent. An empty indent selects the compact
// single-line form.
func EncodeIndent(t nbt.Tag, indent string) (string, error) {
	e := &encoder{indent: indent}
	if err := e.value(t, 0); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

type encoder struct {
	sb     strings.Builder
	indent string
}

func (e *encoder) value(t nbt.Tag, depth int) error {
	if depth > nbt.MaxDepth {
		return fmt.Errorf("%w: depth %d exceeds %d", nbt.ErrTooComplex, depth, nbt.MaxDepth)
	}
	switch v := t.(type) {
	case *nbt.Byte:
		e.sb.WriteString(strconv.FormatInt(int64(v.Value), 10))
		e.sb.WriteByte('b')
	case *nbt.Short:
		e.sb.WriteString(strconv.FormatInt(int64(v.Value), 10))
		e.sb.WriteByte('s')
	case *nbt.Int:
		e.sb.WriteString(strconv.FormatInt(int64(v.Value), 10))
	case *nbt.Long:
		e.sb.WriteString(strconv.FormatInt(v.Value, 10))
		e.sb.WriteByte('L')
	case *nbt.Float:
		e.sb.WriteString(strconv.FormatFloat(float64(v.Value), 'g', -1, 32))
		e.sb.WriteByte('f')
	case *nbt.Double:
		e.sb.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
		e.sb.WriteByte('d')
	case *nbt.String:
		e.sb.WriteString(quote(v.Value))
	case *nbt.ByteArray:
		e.sb.WriteString("[B;")
		for i, b := range v.Value {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.sb.WriteString(strconv.FormatInt(int64(int8(b)), 10))
			e.sb.WriteByte('b')
		}
		e.sb.WriteByte(']')
	case *nbt.IntArray:
		e.sb.WriteString("[I;")
		for i, n := range v.Value {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.sb.WriteString(strconv.FormatInt(int64(n), 10))
		}
		e.sb.WriteByte(']')
	case *nbt.LongArray:
		e.sb.WriteString("[L;")
		for i, n := range v.Value {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.sb.WriteString(strconv.FormatInt(n, 10))
			e.sb.WriteByte('L')
		}
		e.sb.WriteByte(']')
	case *nbt.List:
		return e.list(v, depth)
	case *nbt.Compound:
		return e.compound(v, depth)
	default:
		return fmt.Errorf("cannot stringify tag type %s", t.ID())
	}
	return nil
}

func (e *encoder) list(l *nbt.List, depth int) error {
	if l.IsEmpty() {
		e.sb.WriteString("[]")
		return nil
	}
	e.sb.WriteByte('[')
	for i, t := range l.Tags() {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		e.newlineIndent(depth + 1)
		if err := e.value(t, depth+1); err != nil {
			return err
		}
	}
	e.newlineIndent(depth)
	e.sb.WriteByte(']')
	return nil
}

func (e *encoder) compound(c *nbt.Compound, depth int) error {
	if c.IsEmpty() {
		e.sb.WriteString("{}")
		return nil
	}
	names := make([]string, 0, c.Size())
	for name := range c.Tags() {
		names = append(names, name)
	}
	sort.Strings(names)

	e.sb.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		e.newlineIndent(depth + 1)
		if safeName(name) {
			e.sb.WriteString(name)
		} else {
			e.sb.WriteString(quote(name))
		}
		e.sb.WriteByte(':')
		if e.indent != "" {
			e.sb.WriteByte(' ')
		}
		if err := e.value(c.Get(name), depth+1); err != nil {
			return err
		}
	}
	e.newlineIndent(depth)
	e.sb.WriteByte('}')
	return nil
}

// newlineIndent breaks the line and indents to depth in pretty mode; it is
// a no-op in compact mode.
func (e *encoder) newlineIndent(depth int) {
	if e.indent == "" {
		return
	}
	e.sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.sb.WriteString(e.indent)
	}
}

// safeName reports whether a compound key can appear without quotes.
func safeName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.', r == '+':
		default:
			return false
		}
	}
	return true
}

// quote renders s as a double-quoted string with backslash escapes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
