package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer encodes the fixed-width primitives of the wire format onto an
// underlying [io.Writer]. All multi-byte values are big-endian; text uses a
// two-byte length prefix followed by modified UTF-8 (see WriteString).
//
// Writer performs no buffering of its own; wrap the destination in a
// [bufio.Writer] when writing many small values to an unbuffered sink.
type Writer struct {
	w   io.Writer
	buf [8]byte
}

// NewWriter returns a Writer that encodes onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteUint8 writes a single raw byte. Type ids are written this way.
func (w *Writer) WriteUint8(v uint8) error {
	w.buf[0] = v
	_, err := w.w.Write(w.buf[:1])
	return err
}

// WriteInt8 writes a signed byte.
func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v))
}

// WriteInt16 writes a big-endian signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) error {
	binary.BigEndian.PutUint16(w.buf[:2], uint16(v))
	_, err := w.w.Write(w.buf[:2])
	return err
}

// WriteInt32 writes a big-endian signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) error {
	binary.BigEndian.PutUint32(w.buf[:4], uint32(v))
	_, err := w.w.Write(w.buf[:4])
	return err
}

// WriteInt64 writes a big-endian signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) error {
	binary.BigEndian.PutUint64(w.buf[:8], uint64(v))
	_, err := w.w.Write(w.buf[:8])
	return err
}

// WriteFloat32 writes a big-endian IEEE-754 single-precision float.
func (w *Writer) WriteFloat32(v float32) error {
	binary.BigEndian.PutUint32(w.buf[:4], math.Float32bits(v))
	_, err := w.w.Write(w.buf[:4])
	return err
}

// WriteFloat64 writes a big-endian IEEE-754 double-precision float.
func (w *Writer) WriteFloat64(v float64) error {
	binary.BigEndian.PutUint64(w.buf[:8], math.Float64bits(v))
	_, err := w.w.Write(w.buf[:8])
	return err
}

// WriteRaw writes p verbatim.
func (w *Writer) WriteRaw(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

// WriteString writes s as a two-byte length prefix followed by its modified
// UTF-8 encoding. The prefix counts encoded bytes, not runes. Returns
// [ErrStringTooLong] if the encoding exceeds 65535 bytes.
func (w *Writer) WriteString(s string) error {
	enc := appendMUTF8(nil, s)
	if len(enc) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(enc))
	}
	binary.BigEndian.PutUint16(w.buf[:2], uint16(len(enc)))
	if _, err := w.w.Write(w.buf[:2]); err != nil {
		return err
	}
	_, err := w.w.Write(enc)
	return err
}

// Reader decodes the fixed-width primitives of the wire format from an
// underlying [io.Reader]. A premature end of input surfaces as
// [ErrMalformed]; decode code never sees a bare [io.EOF].
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader returns a Reader that decodes from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) fill(n int) error {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// ReadUint8 reads a single raw byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadInt16 reads a big-endian signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(r.buf[:2])), nil
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(r.buf[:4])), nil
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(r.buf[:8])), nil
}

// ReadFloat32 reads a big-endian IEEE-754 single-precision float.
func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(r.buf[:4])), nil
}

// ReadFloat64 reads a big-endian IEEE-754 double-precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(r.buf[:8])), nil
}

// ReadRaw reads exactly n bytes. A negative n, as decoded from a corrupt
// length field, is reported as [ErrMalformed].
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrMalformed, n)
	}
	p := make([]byte, n)
	if _, err := io.ReadFull(r.r, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p, nil
}

// ReadString reads a two-byte length prefix and that many bytes of modified
// UTF-8. Invalid encodings are reported as [ErrMalformed].
func (r *Reader) ReadString() (string, error) {
	if err := r.fill(2); err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(r.buf[:2]))
	p, err := r.ReadRaw(n)
	if err != nil {
		return "", err
	}
	s, err := decodeMUTF8(p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}
