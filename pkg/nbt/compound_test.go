package nbt

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompoundMapOperations(t *testing.T) {
	c := NewCompound()

	if prev := c.Put("a", NewInt(1)); prev != nil {
		t.Errorf("Put on empty compound returned %v, want nil", prev)
	}
	if prev := c.Put("a", NewInt(2)); !Equal(prev, NewInt(1)) {
		t.Errorf("Put returned %v, want Int(1)", prev)
	}
	if got := c.Get("a").(*Int).Value; got != 2 {
		t.Errorf("Get(a) = %d, want 2", got)
	}

	if prev := c.PutIfAbsent("a", NewInt(9)); !Equal(prev, NewInt(2)) {
		t.Errorf("PutIfAbsent on mapped name returned %v, want Int(2)", prev)
	}
	if prev := c.PutIfAbsent("b", NewString("s")); prev != nil {
		t.Errorf("PutIfAbsent on unmapped name returned %v, want nil", prev)
	}

	if !c.Contains("b") || c.Contains("z") {
		t.Error("Contains gave wrong answers")
	}
	if !c.ContainsValue(NewString("s")) || c.ContainsValue(NewString("zz")) {
		t.Error("ContainsValue gave wrong answers")
	}
	if c.Size() != 2 || c.IsEmpty() {
		t.Errorf("Size = %d IsEmpty = %v, want 2 false", c.Size(), c.IsEmpty())
	}

	if prev := c.Remove("b"); !Equal(prev, NewString("s")) {
		t.Errorf("Remove(b) = %v, want String(s)", prev)
	}
	if prev := c.Remove("b"); prev != nil {
		t.Errorf("second Remove(b) = %v, want nil", prev)
	}
}

func TestCompoundRemoveMatching(t *testing.T) {
	c := NewCompound()
	c.Put("a", NewInt(1))

	if c.RemoveMatching("a", NewInt(2)) {
		t.Error("RemoveMatching with wrong value removed the entry")
	}
	if !c.Contains("a") {
		t.Error("entry vanished after failed RemoveMatching")
	}
	if !c.RemoveMatching("a", NewInt(1)) {
		t.Error("RemoveMatching with equal value failed")
	}
	if c.Contains("a") {
		t.Error("entry survived RemoveMatching")
	}
}

func TestCompoundPutPanics(t *testing.T) {
	tests := []struct {
		name string
		put  func(c *Compound)
	}{
		{"NilTag", func(c *Compound) { c.Put("a", nil) }},
		{"EndTag", func(c *Compound) { c.Put("a", endLike{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Put did not panic")
				}
			}()
			tt.put(NewCompound())
		})
	}
}

// endLike claims the reserved End id.
type endLike struct{}

func (endLike) ID() ID                              { return IDEnd }
func (endLike) Write(*Writer, int, *Registry) error { return nil }
func (endLike) Read(*Reader, int, *Registry) error  { return nil }

func TestCompoundWireFormat(t *testing.T) {
	t.Run("EmptyEncodesAsSingleEndByte", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewCompound().Write(NewWriter(&buf), 0, nil); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
			t.Errorf("bytes = %x, want 00", buf.Bytes())
		}
	})

	t.Run("SingleEntry", func(t *testing.T) {
		c := NewCompound()
		c.Put("a", NewByte(7))
		var buf bytes.Buffer
		if err := c.Write(NewWriter(&buf), 0, nil); err != nil {
			t.Fatalf("Write: %v", err)
		}
		want := []byte{
			0x01,       // TAG_Byte
			0x00, 0x01, // name length
			'a',
			0x07, // payload
			0x00, // terminator
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Errorf("bytes = %x, want %x", buf.Bytes(), want)
		}
	})

	t.Run("MissingTerminator", func(t *testing.T) {
		data := []byte{0x01, 0x00, 0x01, 'a', 0x07}
		err := NewCompound().Read(NewReader(bytes.NewReader(data)), 0, nil)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("err = %v, want ErrMalformed", err)
		}
	})

	t.Run("UnknownEntryType", func(t *testing.T) {
		data := []byte{
			0x01, 0x00, 0x01, 'a', 0x07, // valid byte entry
			0x63, 0x00, 0x01, 'b', // entry with unregistered id 0x63
		}
		c := NewCompound()
		c.Put("keep", NewInt(1))
		err := c.Read(NewReader(bytes.NewReader(data)), 0, nil)
		if !errors.Is(err, ErrUnknownType) {
			t.Fatalf("err = %v, want ErrUnknownType", err)
		}
		// The failed decode must not have replaced the existing entries.
		if !c.Contains("keep") || c.Contains("a") {
			t.Error("failed Read corrupted the compound")
		}
	})

	t.Run("LastEntryWinsOnDuplicateName", func(t *testing.T) {
		data := []byte{
			0x01, 0x00, 0x01, 'a', 0x01,
			0x01, 0x00, 0x01, 'a', 0x02,
			0x00,
		}
		c := NewCompound()
		if err := c.Read(NewReader(bytes.NewReader(data)), 0, nil); err != nil {
			t.Fatalf("Read: %v", err)
		}
		if c.Size() != 1 {
			t.Fatalf("Size = %d, want 1", c.Size())
		}
		if got := c.Get("a").(*Byte).Value; got != 2 {
			t.Errorf("Get(a) = %d, want 2", got)
		}
	})
}

func TestCompoundRoundTrip(t *testing.T) {
	c := NewCompound()
	c.Put("byte", NewByte(-3))
	c.Put("short", NewShort(1000))
	c.Put("int", NewInt(-70000))
	c.Put("long", NewLong(1<<40))
	c.Put("float", NewFloat(1.5))
	c.Put("double", NewDouble(-2.25))
	c.Put("string", NewString("héllo\x00world"))
	c.Put("bytes", NewByteArray([]byte{1, 2, 3}))
	c.Put("ints", NewIntArray([]int32{-1, 0, 1}))
	c.Put("longs", NewLongArray([]int64{1 << 50}))
	inner := NewCompound()
	inner.Put("nested", NewString("deep"))
	c.Put("compound", inner)
	l, _ := ListOf(NewDouble(1), NewDouble(2))
	c.Put("list", l)

	var buf bytes.Buffer
	if err := c.Write(NewWriter(&buf), 0, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := NewCompound()
	if err := got.Read(NewReader(&buf), 0, nil); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !Equal(c, got) {
		t.Error("round trip mismatch")
	}
}
