// Package convert bridges tag trees and plain Go values, and through them
// the JSON and CBOR interchange formats.
//
// # Native Mapping
//
// [ToNative] lowers a tag tree to ordinary Go values:
//
//	Byte → int8          ByteArray → []byte
//	Short → int16        IntArray  → []int32
//	Int → int32          LongArray → []int64
//	Long → int64         List      → []any
//	Float → float32      Compound  → map[string]any
//	Double → float64     String    → string
//
// [FromNative] inverts the mapping and additionally accepts the looser
// values produced by generic JSON and CBOR decoding: bool becomes Byte,
// untyped ints become Int or Long by range, float64 becomes Double, and
// string-keyed maps of any key type become Compound. Mixed-type slices are
// rejected, mirroring the list homogeneity invariant.
//
// # Interchange
//
// [MarshalJSON] and [MarshalCBOR] serialize via the native mapping, with
// [UnmarshalJSON] and [UnmarshalCBOR] as inverses. The trip through an
// interchange format is lossy by design: numeric widths collapse to the
// decoder's defaults (every JSON number comes back as a Double), and JSON
// renders byte arrays as base64 strings. CBOR preserves considerably more:
// integer values, byte strings, and text survive, though sized integers
// still widen.
package convert
