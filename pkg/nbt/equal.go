package nbt

import (
	"bytes"
	"slices"
)

// Equal reports deep structural equality of two tags: same type id and same
// payload, recursing through lists and compounds. Two nil tags are equal.
// Lists additionally compare element ids, so an emptied list and a fresh one
// agree. Custom tag types registered by callers compare equal only when they
// are the identical instance.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID() != b.ID() {
		return false
	}
	switch at := a.(type) {
	case *Byte:
		bt, ok := b.(*Byte)
		return ok && at.Value == bt.Value
	case *Short:
		bt, ok := b.(*Short)
		return ok && at.Value == bt.Value
	case *Int:
		bt, ok := b.(*Int)
		return ok && at.Value == bt.Value
	case *Long:
		bt, ok := b.(*Long)
		return ok && at.Value == bt.Value
	case *Float:
		bt, ok := b.(*Float)
		return ok && at.Value == bt.Value
	case *Double:
		bt, ok := b.(*Double)
		return ok && at.Value == bt.Value
	case *String:
		bt, ok := b.(*String)
		return ok && at.Value == bt.Value
	case *ByteArray:
		bt, ok := b.(*ByteArray)
		return ok && bytes.Equal(at.Value, bt.Value)
	case *IntArray:
		bt, ok := b.(*IntArray)
		return ok && slices.Equal(at.Value, bt.Value)
	case *LongArray:
		bt, ok := b.(*LongArray)
		return ok && slices.Equal(at.Value, bt.Value)
	case *List:
		bt, ok := b.(*List)
		if !ok || at.elemID != bt.elemID || len(at.elems) != len(bt.elems) {
			return false
		}
		for i := range at.elems {
			if !Equal(at.elems[i], bt.elems[i]) {
				return false
			}
		}
		return true
	case *Compound:
		bt, ok := b.(*Compound)
		if !ok || len(at.tags) != len(bt.tags) {
			return false
		}
		for name, av := range at.tags {
			bv, ok := bt.tags[name]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
