package nbt

import (
	"fmt"
	"io"
	"maps"
)

// Compound is an unordered map from name to tag (id 10). On the wire each
// entry is its tag's type id, the name, and the payload; a lone End byte
// (0x00) terminates the map. Iteration order is unspecified, so encoding the
// same compound twice may produce differently ordered, equally valid bytes.
//
// No entry may carry the End type id: that byte is reserved for the
// terminator. Compound is not safe for concurrent use without external
// synchronization.
type Compound struct {
	tags map[string]Tag
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{tags: make(map[string]Tag)}
}

// CompoundFrom returns a compound populated with a copy of m.
func CompoundFrom(m map[string]Tag) *Compound {
	c := &Compound{tags: make(map[string]Tag, len(m))}
	maps.Copy(c.tags, m)
	return c
}

// ID returns [IDCompound].
func (c *Compound) ID() ID { return IDCompound }

// Size returns the number of entries.
func (c *Compound) Size() int { return len(c.tags) }

// IsEmpty reports whether the compound has no entries.
func (c *Compound) IsEmpty() bool { return len(c.tags) == 0 }

// Tags returns the backing map. Mutating it directly bypasses the End-id
// check; use Put and Remove instead.
func (c *Compound) Tags() map[string]Tag { return c.tags }

// Put associates tag with name, replacing and returning any previous entry
// (nil if none). Panics if tag is nil or carries the End type id.
func (c *Compound) Put(name string, tag Tag) Tag {
	checkEntry(tag)
	prev := c.tags[name]
	c.tags[name] = tag
	return prev
}

// PutIfAbsent associates tag with name only when name is unmapped, returning
// the existing entry otherwise (nil if the insert happened). Panics if tag
// is nil or carries the End type id.
func (c *Compound) PutIfAbsent(name string, tag Tag) Tag {
	checkEntry(tag)
	if prev, ok := c.tags[name]; ok {
		return prev
	}
	c.tags[name] = tag
	return nil
}

func checkEntry(tag Tag) {
	if tag == nil {
		panic("nbt: nil tag put into compound")
	}
	if tag.ID() == IDEnd {
		panic("nbt: End tag put into compound")
	}
}

// Get returns the tag mapped to name, or nil.
func (c *Compound) Get(name string) Tag { return c.tags[name] }

// Remove deletes the entry for name and returns it (nil if none).
func (c *Compound) Remove(name string) Tag {
	prev, ok := c.tags[name]
	if ok {
		delete(c.tags, name)
	}
	return prev
}

// RemoveMatching deletes the entry for name only when its current value
// equals tag (per [Equal]), reporting whether a removal happened.
func (c *Compound) RemoveMatching(name string, tag Tag) bool {
	cur, ok := c.tags[name]
	if !ok || !Equal(cur, tag) {
		return false
	}
	delete(c.tags, name)
	return true
}

// Contains reports whether an entry exists for name.
func (c *Compound) Contains(name string) bool {
	_, ok := c.tags[name]
	return ok
}

// ContainsValue reports whether any entry equals tag (per [Equal]),
// regardless of its name.
func (c *Compound) ContainsValue(tag Tag) bool {
	for _, t := range c.tags {
		if Equal(t, tag) {
			return true
		}
	}
	return false
}

// Write encodes the compound payload: for each entry its type id, name, and
// payload at depth+1, then a single End byte. Fails with [ErrTooComplex]
// before any I/O when depth exceeds [MaxDepth].
func (c *Compound) Write(w *Writer, depth int, reg *Registry) error {
	if depth > MaxDepth {
		return errTooDeep(depth)
	}
	reg = reg.orBuiltin()
	for name, t := range c.tags {
		if err := w.WriteUint8(uint8(t.ID())); err != nil {
			return err
		}
		if t.ID() == IDEnd {
			continue
		}
		if err := w.WriteString(name); err != nil {
			return err
		}
		if err := t.Write(w, depth+1, reg); err != nil {
			return err
		}
	}
	return w.WriteUint8(uint8(IDEnd))
}

// Read decodes the compound payload, replacing the receiver's entries. It
// loops reading a type id byte, stopping at End, otherwise reading the entry
// name, instantiating the tag through the registry, and delegating to its
// Read at depth+1. A later entry overwrites an earlier one with the same
// name. Fails with [ErrTooComplex] when depth exceeds [MaxDepth],
// [ErrUnknownType] when an id has no factory, or [ErrMalformed] when the
// input ends before the terminator.
func (c *Compound) Read(r *Reader, depth int, reg *Registry) error {
	if depth > MaxDepth {
		return errTooDeep(depth)
	}
	reg = reg.orBuiltin()

	tags := make(map[string]Tag)
	for {
		idByte, err := r.ReadUint8()
		if err != nil {
			return err
		}
		if ID(idByte) == IDEnd {
			break
		}
		name, err := r.ReadString()
		if err != nil {
			return err
		}
		t, err := reg.New(ID(idByte))
		if err != nil {
			return err
		}
		if err := t.Read(r, depth+1, reg); err != nil {
			return err
		}
		tags[name] = t
	}
	c.tags = tags
	return nil
}

// WriteRoot frames the compound as a root document on w: the compound type
// id, the root name, then the compound payload starting at depth 0.
func (c *Compound) WriteRoot(w io.Writer, rootName string, reg *Registry) error {
	bw := NewWriter(w)
	if err := bw.WriteUint8(uint8(IDCompound)); err != nil {
		return err
	}
	if err := bw.WriteString(rootName); err != nil {
		return err
	}
	return c.Write(bw, 0, reg)
}

// ReadNamedRoot reads a root document from r and returns its name and
// compound. Fails with [ErrInvalidRoot] when the leading byte is not the
// compound type id.
func ReadNamedRoot(r io.Reader, reg *Registry) (string, *Compound, error) {
	br := NewReader(r)
	idByte, err := br.ReadUint8()
	if err != nil {
		return "", nil, err
	}
	if ID(idByte) != IDCompound {
		return "", nil, fmt.Errorf("%w: leading id %d", ErrInvalidRoot, idByte)
	}
	name, err := br.ReadString()
	if err != nil {
		return "", nil, err
	}
	c := NewCompound()
	if err := c.Read(br, 0, reg); err != nil {
		return "", nil, err
	}
	return name, c, nil
}

// ReadRoot reads a root document from r, discarding the root name.
func ReadRoot(r io.Reader, reg *Registry) (*Compound, error) {
	_, c, err := ReadNamedRoot(r, reg)
	return c, err
}
