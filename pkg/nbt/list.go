package nbt

import (
	"fmt"
	"slices"
)

// List is an ordered, homogeneous sequence of tags (id 9). All elements
// share a single element type id: the id of the first tag added. When the
// list becomes empty the element id resets to [IDEnd] (0), and the next
// addition adopts a type again.
//
// On the wire a list is its element id (one byte), a signed 32-bit element
// count, and the concatenated element payloads. Elements carry no per-entry
// type byte and no name; homogeneity makes both redundant.
//
// List is not safe for concurrent use without external synchronization.
type List struct {
	elems  []Tag
	elemID ID
}

// NewList returns an empty, untyped list.
func NewList() *List {
	return &List{}
}

// ListOf builds a list from tags in order. It returns an error if the tags
// do not all share one type id. An empty call yields an empty, untyped list.
func ListOf(tags ...Tag) (*List, error) {
	l := NewList()
	for i, t := range tags {
		if !l.Add(t) {
			return nil, fmt.Errorf("tag %d: %s does not match list type %s", i, t.ID(), l.elemID)
		}
	}
	return l, nil
}

// ID returns [IDList].
func (l *List) ID() ID { return IDList }

// ElementID returns the type id shared by all elements, or [IDEnd] when the
// list is empty.
func (l *List) ElementID() ID { return l.elemID }

// Size returns the number of elements.
func (l *List) Size() int { return len(l.elems) }

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool { return len(l.elems) == 0 }

// Get returns the element at index i. It panics if i is out of range, like
// a slice access.
func (l *List) Get(i int) Tag { return l.elems[i] }

// Tags returns the backing slice of elements. Mutating it directly bypasses
// the homogeneity checks; use Add, Insert, and Remove instead.
func (l *List) Tags() []Tag { return l.elems }

// Add appends tag and reports whether it was accepted. An empty list adopts
// the tag's type id; after that, a tag whose id differs from the element id
// is rejected and the list is left unchanged. Panics if tag is nil.
func (l *List) Add(tag Tag) bool {
	if tag == nil {
		panic("nbt: nil tag added to list")
	}
	if len(l.elems) == 0 {
		l.elemID = tag.ID()
	}
	if tag.ID() != l.elemID {
		return false
	}
	l.elems = append(l.elems, tag)
	return true
}

// Insert places tag at index i, shifting later elements right. A tag whose
// type id does not match is silently dropped without mutating the list;
// unlike Add there is no rejection signal. Otherwise returns
// [ErrIndexOutOfRange] if i is outside [0, Size]. An empty list adopts the
// tag's type before the index check, so a failed insert still types the
// list. Panics if tag is nil.
func (l *List) Insert(i int, tag Tag) error {
	if tag == nil {
		panic("nbt: nil tag inserted into list")
	}
	if len(l.elems) == 0 {
		l.elemID = tag.ID()
	}
	if tag.ID() != l.elemID {
		return nil
	}
	if i < 0 || i > len(l.elems) {
		return fmt.Errorf("%w: %d with size %d", ErrIndexOutOfRange, i, len(l.elems))
	}
	l.elems = slices.Insert(l.elems, i, tag)
	return nil
}

// Remove deletes the first element equal to tag (per [Equal]) and reports
// whether one was found. Removing the last element resets the element id.
func (l *List) Remove(tag Tag) bool {
	for i, e := range l.elems {
		if Equal(e, tag) {
			l.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt deletes the element at index i and returns it. It panics if i is
// out of range. Removing the last element resets the element id.
func (l *List) RemoveAt(i int) Tag {
	t := l.elems[i]
	l.elems = slices.Delete(l.elems, i, i+1)
	if len(l.elems) == 0 {
		l.elemID = IDEnd
	}
	return t
}

// Contains reports whether the list holds an element equal to tag.
func (l *List) Contains(tag Tag) bool {
	return slices.ContainsFunc(l.elems, func(e Tag) bool { return Equal(e, tag) })
}

// ContainsAll reports whether the list holds an element equal to every tag
// in tags.
func (l *List) ContainsAll(tags []Tag) bool {
	for _, t := range tags {
		if !l.Contains(t) {
			return false
		}
	}
	return true
}

// Clear removes all elements and resets the element id.
func (l *List) Clear() {
	l.elems = nil
	l.elemID = IDEnd
}

// Write encodes the list payload: element id, element count, then each
// element's payload at depth+1. Fails with [ErrTooComplex] before any I/O
// when depth exceeds [MaxDepth].
func (l *List) Write(w *Writer, depth int, reg *Registry) error {
	if depth > MaxDepth {
		return errTooDeep(depth)
	}
	reg = reg.orBuiltin()
	if err := w.WriteUint8(uint8(l.elemID)); err != nil {
		return err
	}
	if err := w.WriteInt32(int32(len(l.elems))); err != nil {
		return err
	}
	for _, e := range l.elems {
		if err := e.Write(w, depth+1, reg); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes the list payload, instantiating each element through the
// registry and delegating to its Read at depth+1. A zero count yields an
// empty list with element id 0 regardless of the id byte on the wire. Fails
// with [ErrTooComplex] when depth exceeds [MaxDepth], [ErrUnknownType] when
// the element id has no factory, or [ErrMalformed] on truncated input.
func (l *List) Read(r *Reader, depth int, reg *Registry) error {
	if depth > MaxDepth {
		return errTooDeep(depth)
	}
	reg = reg.orBuiltin()

	idByte, err := r.ReadUint8()
	if err != nil {
		return err
	}
	count, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if count < 0 {
		return errNegativeCount(count)
	}

	elemID := ID(idByte)
	// count comes from untrusted input; cap the preallocation.
	elems := make([]Tag, 0, min(int(count), 4096))
	for i := int32(0); i < count; i++ {
		t, err := reg.New(elemID)
		if err != nil {
			return err
		}
		if err := t.Read(r, depth+1, reg); err != nil {
			return err
		}
		elems = append(elems, t)
	}

	if len(elems) == 0 {
		l.elemID = IDEnd
	} else {
		l.elemID = elemID
	}
	l.elems = elems
	return nil
}
