package nbt

// Leaf scalar tags. Each is a fixed-width or length-prefixed copy with no
// recursion, so none of them checks the depth guard; the guard applies at
// the composite level that references them.

// Byte is a signed 8-bit integer tag (id 1).
type Byte struct {
	Value int8
}

// NewByte returns a byte tag holding v.
func NewByte(v int8) *Byte { return &Byte{Value: v} }

// ID returns [IDByte].
func (t *Byte) ID() ID { return IDByte }

// Write encodes the payload to w.
func (t *Byte) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteInt8(t.Value)
}

// Read decodes the payload from r.
func (t *Byte) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadInt8()
	t.Value = v
	return err
}

// Short is a signed 16-bit integer tag (id 2).
type Short struct {
	Value int16
}

// NewShort returns a short tag holding v.
func NewShort(v int16) *Short { return &Short{Value: v} }

// ID returns [IDShort].
func (t *Short) ID() ID { return IDShort }

// Write encodes the payload to w.
func (t *Short) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteInt16(t.Value)
}

// Read decodes the payload from r.
func (t *Short) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadInt16()
	t.Value = v
	return err
}

// Int is a signed 32-bit integer tag (id 3).
type Int struct {
	Value int32
}

// NewInt returns an int tag holding v.
func NewInt(v int32) *Int { return &Int{Value: v} }

// ID returns [IDInt].
func (t *Int) ID() ID { return IDInt }

// Write encodes the payload to w.
func (t *Int) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteInt32(t.Value)
}

// Read decodes the payload from r.
func (t *Int) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadInt32()
	t.Value = v
	return err
}

// Long is a signed 64-bit integer tag (id 4).
type Long struct {
	Value int64
}

// NewLong returns a long tag holding v.
func NewLong(v int64) *Long { return &Long{Value: v} }

// ID returns [IDLong].
func (t *Long) ID() ID { return IDLong }

// Write encodes the payload to w.
func (t *Long) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteInt64(t.Value)
}

// Read decodes the payload from r.
func (t *Long) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadInt64()
	t.Value = v
	return err
}

// Float is an IEEE-754 single-precision tag (id 5).
type Float struct {
	Value float32
}

// NewFloat returns a float tag holding v.
func NewFloat(v float32) *Float { return &Float{Value: v} }

// ID returns [IDFloat].
func (t *Float) ID() ID { return IDFloat }

// Write encodes the payload to w.
func (t *Float) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteFloat32(t.Value)
}

// Read decodes the payload from r.
func (t *Float) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadFloat32()
	t.Value = v
	return err
}

// Double is an IEEE-754 double-precision tag (id 6).
type Double struct {
	Value float64
}

// NewDouble returns a double tag holding v.
func NewDouble(v float64) *Double { return &Double{Value: v} }

// ID returns [IDDouble].
func (t *Double) ID() ID { return IDDouble }

// Write encodes the payload to w.
func (t *Double) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteFloat64(t.Value)
}

// Read decodes the payload from r.
func (t *Double) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadFloat64()
	t.Value = v
	return err
}

// String is a length-prefixed modified UTF-8 text tag (id 8).
type String struct {
	Value string
}

// NewString returns a string tag holding v.
func NewString(v string) *String { return &String{Value: v} }

// ID returns [IDString].
func (t *String) ID() ID { return IDString }

// Write encodes the payload to w.
func (t *String) Write(w *Writer, depth int, reg *Registry) error {
	return w.WriteString(t.Value)
}

// Read decodes the payload from r.
func (t *String) Read(r *Reader, depth int, reg *Registry) error {
	v, err := r.ReadString()
	t.Value = v
	return err
}
