package snbt

import (
	"errors"
	"strings"
	"testing"

	"github.com/lodeworks/nbtkit/pkg/nbt"
)

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		tag  nbt.Tag
		want string
	}{
		{"Byte", nbt.NewByte(7), "7b"},
		{"NegativeByte", nbt.NewByte(-3), "-3b"},
		{"Short", nbt.NewShort(300), "300s"},
		{"Int", nbt.NewInt(5), "5"},
		{"Long", nbt.NewLong(900), "900L"},
		{"Float", nbt.NewFloat(1.5), "1.5f"},
		{"Double", nbt.NewDouble(-2.25), "-2.25d"},
		{"String", nbt.NewString("hi"), `"hi"`},
		{"StringEscapes", nbt.NewString(`a"b\c`), `"a\"b\\c"`},
		{"ByteArray", nbt.NewByteArray([]byte{1, 0xFF}), "[B;1b,-1b]"},
		{"IntArray", nbt.NewIntArray([]int32{1, 2}), "[I;1,2]"},
		{"LongArray", nbt.NewLongArray([]int64{3}), "[L;3L]"},
		{"EmptyList", nbt.NewList(), "[]"},
		{"EmptyCompound", nbt.NewCompound(), "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.tag)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeCompoundSortsKeys(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("zebra", nbt.NewInt(1))
	c.Put("alpha", nbt.NewInt(2))
	c.Put("mid point", nbt.NewInt(3)) // space forces quoting

	got, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{alpha:2,"mid point":3,zebra:1}`
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("a", nbt.NewInt(1))
	l, _ := nbt.ListOf(nbt.NewInt(1), nbt.NewInt(2))
	c.Put("b", l)

	got, err := EncodeIndent(c, "  ")
	if err != nil {
		t.Fatalf("EncodeIndent: %v", err)
	}
	want := "{\n  a: 1,\n  b: [\n    1,\n    2\n  ]\n}"
	if got != want {
		t.Errorf("EncodeIndent = %q, want %q", got, want)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want nbt.Tag
	}{
		{"Byte", "7b", nbt.NewByte(7)},
		{"ByteUpper", "7B", nbt.NewByte(7)},
		{"Short", "300s", nbt.NewShort(300)},
		{"Int", "5", nbt.NewInt(5)},
		{"NegativeInt", "-12", nbt.NewInt(-12)},
		{"Long", "900L", nbt.NewLong(900)},
		{"Float", "1.5f", nbt.NewFloat(1.5)},
		{"Double", "-2.25d", nbt.NewDouble(-2.25)},
		{"BareDouble", "2.5", nbt.NewDouble(2.5)},
		{"True", "true", nbt.NewByte(1)},
		{"False", "false", nbt.NewByte(0)},
		{"QuotedString", `"hi there"`, nbt.NewString("hi there")},
		{"SingleQuoted", `'hi'`, nbt.NewString("hi")},
		{"UnquotedString", "hello", nbt.NewString("hello")},
		{"IntOverflowBecomesString", "99999999999", nbt.NewString("99999999999")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !nbt.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseComposites(t *testing.T) {
	got, err := ParseCompound(`{a:5, b:[1,2], arr:[B;1b,2b], nested:{s:"x"}}`)
	if err != nil {
		t.Fatalf("ParseCompound: %v", err)
	}

	if v, ok := got.Get("a").(*nbt.Int); !ok || v.Value != 5 {
		t.Errorf("a = %#v, want Int(5)", got.Get("a"))
	}
	l, ok := got.Get("b").(*nbt.List)
	if !ok || l.Size() != 2 || l.ElementID() != nbt.IDInt {
		t.Errorf("b = %#v, want Int list of 2", got.Get("b"))
	}
	arr, ok := got.Get("arr").(*nbt.ByteArray)
	if !ok || len(arr.Value) != 2 {
		t.Errorf("arr = %#v, want ByteArray of 2", got.Get("arr"))
	}
	nested, ok := got.Get("nested").(*nbt.Compound)
	if !ok || !nbt.Equal(nested.Get("s"), nbt.NewString("x")) {
		t.Errorf("nested = %#v", got.Get("nested"))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"UnterminatedCompound", "{a:1"},
		{"UnterminatedList", "[1,2"},
		{"UnterminatedString", `"abc`},
		{"MissingColon", "{a 1}"},
		{"MissingKey", "{:1}"},
		{"TrailingInput", "5 junk"},
		{"MixedList", `[1,"two"]`},
		{"BadArrayElement", "[I;1b]"},
		{"TruncatedByteArrayPrefix", "[B;"},
		{"TruncatedIntArrayPrefix", "[I;"},
		{"TruncatedLongArrayPrefix", "[L;"},
		{"TruncatedArrayPrefixSpace", "[I; "},
		{"TruncatedArrayElements", "[I;1,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) err = %v, want ErrSyntax", tt.in, err)
			}
		})
	}
}

func TestParseDepthGuard(t *testing.T) {
	in := strings.Repeat("{a:", nbt.MaxDepth+2) + "1" + strings.Repeat("}", nbt.MaxDepth+2)
	if _, err := Parse(in); !errors.Is(err, nbt.ErrTooComplex) {
		t.Fatalf("err = %v, want ErrTooComplex", err)
	}
}

func TestRoundTrip(t *testing.T) {
	root := nbt.NewCompound()
	root.Put("byte", nbt.NewByte(-3))
	root.Put("short", nbt.NewShort(1000))
	root.Put("int", nbt.NewInt(-70000))
	root.Put("long", nbt.NewLong(1<<40))
	root.Put("float", nbt.NewFloat(1.5))
	root.Put("double", nbt.NewDouble(-2.25))
	root.Put("string", nbt.NewString(`quote " backslash \`))
	root.Put("bytes", nbt.NewByteArray([]byte{1, 2, 3}))
	root.Put("ints", nbt.NewIntArray([]int32{-1, 0, 1}))
	root.Put("longs", nbt.NewLongArray([]int64{1 << 50}))
	l, _ := nbt.ListOf(nbt.NewString("a"), nbt.NewString("b"))
	root.Put("list", l)
	inner := nbt.NewCompound()
	inner.Put("deep", nbt.NewInt(9))
	root.Put("compound", inner)

	for _, indent := range []string{"", "  "} {
		text, err := EncodeIndent(root, indent)
		if err != nil {
			t.Fatalf("EncodeIndent(%q): %v", indent, err)
		}
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if !nbt.Equal(root, got) {
			t.Errorf("round trip with indent %q mismatch:\n%s", indent, text)
		}
	}
}
