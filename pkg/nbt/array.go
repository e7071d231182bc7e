package nbt

// Leaf array tags: a signed 32-bit element count followed by the packed
// element payloads. Like the scalars, they carry no recursion and skip the
// depth guard.

// ByteArray is a packed array of signed bytes (id 7).
type ByteArray struct {
	Value []byte
}

// NewByteArray returns a byte array tag holding v. The slice is not copied.
func NewByteArray(v []byte) *ByteArray { return &ByteArray{Value: v} }

// ID returns [IDByteArray].
func (t *ByteArray) ID() ID { return IDByteArray }

// Write encodes the payload to w.
func (t *ByteArray) Write(w *Writer, depth int, reg *Registry) error {
	if err := w.WriteInt32(int32(len(t.Value))); err != nil {
		return err
	}
	return w.WriteRaw(t.Value)
}

// Read decodes the payload from r.
func (t *ByteArray) Read(r *Reader, depth int, reg *Registry) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	p, err := r.ReadRaw(int(n))
	if err != nil {
		return err
	}
	t.Value = p
	return nil
}

// IntArray is a packed array of signed 32-bit integers (id 11).
type IntArray struct {
	Value []int32
}

// NewIntArray returns an int array tag holding v. The slice is not copied.
func NewIntArray(v []int32) *IntArray { return &IntArray{Value: v} }

// ID returns [IDIntArray].
func (t *IntArray) ID() ID { return IDIntArray }

// Write encodes the payload to w.
func (t *IntArray) Write(w *Writer, depth int, reg *Registry) error {
	if err := w.WriteInt32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes the payload from r.
func (t *IntArray) Read(r *Reader, depth int, reg *Registry) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return errNegativeCount(n)
	}
	out := make([]int32, n)
	for i := range out {
		if out[i], err = r.ReadInt32(); err != nil {
			return err
		}
	}
	t.Value = out
	return nil
}

// LongArray is a packed array of signed 64-bit integers (id 12).
type LongArray struct {
	Value []int64
}

// NewLongArray returns a long array tag holding v. The slice is not copied.
func NewLongArray(v []int64) *LongArray { return &LongArray{Value: v} }

// ID returns [IDLongArray].
func (t *LongArray) ID() ID { return IDLongArray }

// Write encodes the payload to w.
func (t *LongArray) Write(w *Writer, depth int, reg *Registry) error {
	if err := w.WriteInt32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.WriteInt64(v); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes the payload from r.
func (t *LongArray) Read(r *Reader, depth int, reg *Registry) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return errNegativeCount(n)
	}
	out := make([]int64, n)
	for i := range out {
		if out[i], err = r.ReadInt64(); err != nil {
			return err
		}
	}
	t.Value = out
	return nil
}
