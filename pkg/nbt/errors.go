package nbt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned by [Registry.Factory] and [Registry.New],
	// and propagated by [Compound.Read] and [List.Read], when a decoded type
	// id has no registered factory. The wrapped message carries the offending
	// id.
	ErrUnknownType = errors.New("unknown tag type")

	// ErrTooComplex is returned by composite Write and Read methods when the
	// nesting depth exceeds [MaxDepth]. The check runs before any I/O for the
	// offending node and applies identically to encode and decode.
	ErrTooComplex = errors.New("structure too complex")

	// ErrMalformed is returned when the input ends, or contains invalid
	// data, where a well-formed value was expected: a truncated length
	// field, a missing End terminator, or an invalid text encoding.
	ErrMalformed = errors.New("malformed stream")

	// ErrInvalidRoot is returned by [ReadRoot] and [ReadNamedRoot] when the
	// leading byte of the stream is not the compound type id. Every root
	// document must be framed by a named compound.
	ErrInvalidRoot = errors.New("root tag must be a compound")

	// ErrNilTag is returned by [Registry.New] when a registered factory
	// produces a nil tag instead of a blank instance.
	ErrNilTag = errors.New("tag factory returned nil")

	// ErrIndexOutOfRange is returned by [List.Insert] when the index is
	// outside [0, size].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStringTooLong is returned by [Writer.WriteString] when the modified
	// UTF-8 encoding of a string exceeds the 65535-byte limit imposed by the
	// two-byte length prefix.
	ErrStringTooLong = errors.New("string exceeds 65535 encoded bytes")
)

// errNegativeCount wraps a corrupt element count as [ErrMalformed].
func errNegativeCount(n int32) error {
	return fmt.Errorf("%w: negative element count %d", ErrMalformed, n)
}

// errTooDeep wraps the exceeded depth as [ErrTooComplex].
func errTooDeep(depth int) error {
	return fmt.Errorf("%w: depth %d exceeds %d", ErrTooComplex, depth, MaxDepth)
}
