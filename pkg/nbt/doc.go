// Package nbt implements the named binary tag format: a self-describing
// tree of typed tags serialized to a big-endian byte stream.
//
// # Data Model
//
// A tag is one node in the tree, discriminated by a one-byte type [ID]:
//
//   - Scalars: [Byte], [Short], [Int], [Long], [Float], [Double], [String]
//   - Arrays: [ByteArray], [IntArray], [LongArray]
//   - Composites: [List] (ordered, homogeneous), [Compound] (name → tag map)
//
// Every serialized stream is framed by a single named root compound.
// A [List] enforces its homogeneity invariant at the mutation boundary: the
// first element added fixes the element type, and mismatched elements are
// rejected ([List.Add]) or dropped ([List.Insert]) without mutation.
//
// # Encoding and Decoding
//
// Composite tags recurse depth-first, threading an explicit depth counter
// that is bounded by [MaxDepth] (512) on both the encode and decode paths.
// Decoding resolves type ids through a [Registry], so custom tag types can
// participate by registering a factory:
//
//	reg := nbt.NewRegistry()
//	reg.Register(64, func() nbt.Tag { return new(myTag) })
//
// Most callers never touch the registry: passing nil selects the built-in
// one.
//
// # Usage
//
//	root := nbt.NewCompound()
//	root.Put("name", nbt.NewString("hello"))
//	data, err := nbt.Marshal("root", root, nil)
//	...
//	name, parsed, err := nbt.Unmarshal(data, nil)
//
// File helpers ([WriteFile], [ReadNamedFile]) additionally handle the
// conventional gzip envelope, detected from the file signature on read.
//
// # Errors
//
// Decoding failures surface as wrapped sentinel errors: [ErrUnknownType],
// [ErrTooComplex], [ErrMalformed], [ErrInvalidRoot]. A failed decode leaves
// the destination tag in an unspecified state; callers must discard it.
//
// # Concurrency
//
// Tags have no internal locking. A [Registry] is safe for concurrent reads
// once registration has completed. Each traversal owns its stream for the
// duration of the call.
package nbt
