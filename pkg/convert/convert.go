package convert

import (
	"fmt"
	"math"

	"github.com/lodeworks/nbtkit/pkg/nbt"
)

// ToNative lowers a tag tree to plain Go values per the package mapping.
// Unrecognized (custom) tag types lower to themselves.
func ToNative(t nbt.Tag) any {
	switch v := t.(type) {
	case *nbt.Byte:
		return v.Value
	case *nbt.Short:
		return v.Value
	case *nbt.Int:
		return v.Value
	case *nbt.Long:
		return v.Value
	case *nbt.Float:
		return v.Value
	case *nbt.Double:
		return v.Value
	case *nbt.String:
		return v.Value
	case *nbt.ByteArray:
		return v.Value
	case *nbt.IntArray:
		return v.Value
	case *nbt.LongArray:
		return v.Value
	case *nbt.List:
		out := make([]any, 0, v.Size())
		for _, e := range v.Tags() {
			out = append(out, ToNative(e))
		}
		return out
	case *nbt.Compound:
		out := make(map[string]any, v.Size())
		for name, e := range v.Tags() {
			out[name] = ToNative(e)
		}
		return out
	default:
		return t
	}
}

// FromNative lifts a plain Go value into a tag tree. It accepts the exact
// types produced by [ToNative] plus the generic shapes coming out of JSON
// and CBOR decoders. Nil values, mixed-type slices, and non-string map keys
// are rejected.
func FromNative(v any) (nbt.Tag, error) {
	switch n := v.(type) {
	case nbt.Tag:
		return n, nil
	case bool:
		if n {
			return nbt.NewByte(1), nil
		}
		return nbt.NewByte(0), nil
	case int8:
		return nbt.NewByte(n), nil
	case int16:
		return nbt.NewShort(n), nil
	case int32:
		return nbt.NewInt(n), nil
	case int64:
		return intTag(n), nil
	case int:
		return intTag(int64(n)), nil
	case uint64:
		if n > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows the long range", n)
		}
		return intTag(int64(n)), nil
	case float32:
		return nbt.NewFloat(n), nil
	case float64:
		return nbt.NewDouble(n), nil
	case string:
		return nbt.NewString(n), nil
	case []byte:
		return nbt.NewByteArray(n), nil
	case []int32:
		return nbt.NewIntArray(n), nil
	case []int64:
		return nbt.NewLongArray(n), nil
	case []any:
		l := nbt.NewList()
		for i, e := range n {
			t, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			if !l.Add(t) {
				return nil, fmt.Errorf("element %d: %s does not match list type %s", i, t.ID(), l.ElementID())
			}
		}
		return l, nil
	case map[string]any:
		c := nbt.NewCompound()
		for name, e := range n {
			t, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", name, err)
			}
			c.Put(name, t)
		}
		return c, nil
	case map[any]any:
		c := nbt.NewCompound()
		for key, e := range n {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v is %T, want string", key, key)
			}
			t, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", name, err)
			}
			c.Put(name, t)
		}
		return c, nil
	case nil:
		return nil, fmt.Errorf("cannot represent nil as a tag")
	default:
		return nil, fmt.Errorf("cannot represent %T as a tag", v)
	}
}

// FromNativeCompound is FromNative restricted to a map root.
func FromNativeCompound(v any) (*nbt.Compound, error) {
	t, err := FromNative(v)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("root is %s, want %s", t.ID(), nbt.IDCompound)
	}
	return c, nil
}

// intTag picks Int when the value fits in 32 bits, Long otherwise.
func intTag(n int64) nbt.Tag {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return nbt.NewInt(int32(n))
	}
	return nbt.NewLong(n)
}
