package nbt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Compression selects the envelope wrapped around a serialized root
// document. The tag codec itself is agnostic to it; compression applies only
// at the file and byte-slice entry points.
type Compression int

const (
	// Uncompressed stores the raw big-endian byte stream.
	Uncompressed Compression = iota
	// Gzip wraps the byte stream in a gzip envelope, the conventional
	// on-disk form for this format.
	Gzip
)

// gzipMagic is the two-byte signature that opens every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// Marshal serializes a root document to bytes, uncompressed.
func Marshal(rootName string, root *Compound, reg *Registry) ([]byte, error) {
	var buf bytes.Buffer
	if err := root.WriteRoot(&buf, rootName, reg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes a root document from data, transparently unwrapping
// a gzip envelope when the leading bytes carry the gzip signature. It
// returns the root name alongside the compound.
func Unmarshal(data []byte, reg *Registry) (string, *Compound, error) {
	r, err := maybeGunzip(bytes.NewReader(data))
	if err != nil {
		return "", nil, err
	}
	return ReadNamedRoot(r, reg)
}

// WriteFile writes a root document to path using the given compression.
func WriteFile(path, rootName string, root *Compound, comp Compression, reg *Registry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	switch comp {
	case Uncompressed:
		if err := root.WriteRoot(bw, rootName, reg); err != nil {
			return err
		}
	case Gzip:
		zw := gzip.NewWriter(bw)
		if err := root.WriteRoot(zw, rootName, reg); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown compression %d", comp)
	}
	return bw.Flush()
}

// ReadNamedFile reads a root document from path, returning the root name and
// compound. Gzip envelopes are detected from the file signature and
// unwrapped transparently.
func ReadNamedFile(path string, reg *Registry) (string, *Compound, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	r, err := maybeGunzip(bufio.NewReader(f))
	if err != nil {
		return "", nil, err
	}
	return ReadNamedRoot(r, reg)
}

// ReadFile reads a root document from path, discarding the root name.
func ReadFile(path string, reg *Registry) (*Compound, error) {
	_, c, err := ReadNamedFile(path, reg)
	return c, err
}

// maybeGunzip sniffs the gzip signature and, when present, interposes a
// gzip reader.
func maybeGunzip(r io.Reader) (io.Reader, error) {
	buffered, ok := r.(*bufio.Reader)
	if !ok {
		buffered = bufio.NewReader(r)
	}
	head, err := buffered.Peek(2)
	if err != nil || !bytes.Equal(head, gzipMagic) {
		// Not gzip (or too short to be); let the tag codec report any
		// truncation.
		return buffered, nil
	}
	zr, err := gzip.NewReader(buffered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return zr, nil
}
