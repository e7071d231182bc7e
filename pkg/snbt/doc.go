// Package snbt converts tag trees to and from their stringified text form.
//
// The text form mirrors the binary structure one-to-one: compounds are
// `{name:value,...}`, lists are `[a,b,c]`, and the packed arrays carry a
// type prefix (`[B;1b,2b]`, `[I;1,2]`, `[L;1L,2L]`). Scalars use type
// suffixes to stay unambiguous:
//
//	1b        Byte        1.5f      Float
//	300s      Short       1.5d      Double
//	5         Int         "text"    String
//	900L      Long
//
// # Usage
//
//	text, err := snbt.Encode(root)           // compact, one line
//	text, err := snbt.EncodeIndent(root, "  ") // pretty-printed
//	tag, err := snbt.Parse(`{a:5,b:[1,2]}`)
//
// Encoding is deterministic: compound entries are emitted in sorted key
// order, unlike the binary form whose map iteration order is unspecified.
// Parse enforces the same list homogeneity invariant as the binary decoder
// and the same nesting bound ([nbt.MaxDepth]).
//
// Parsing failures surface as [ErrSyntax] wrapped with the byte offset of
// the offending input.
package snbt
