package nbt

// MaxDepth is the hard recursion bound for composite tags. Any Write or Read
// entered with a depth greater than MaxDepth fails with [ErrTooComplex],
// protecting the call stack against maliciously nested input. The bound is
// not configurable.
const MaxDepth = 512

// Tag is one node in a serialized tree: a type id plus a typed payload.
//
// Write emits the tag's payload only; the type id and, inside compounds, the
// entry name are written by the enclosing container (or by the root framing).
// Read is the mirror image: it populates a blank instance, typically obtained
// from [Registry.New], from the payload bytes.
//
// depth counts composite boundary crossings from the document root and must
// be incremented by exactly one when a List or Compound descends into a
// child. Leaf tags receive the depth but have no recursion of their own, so
// they ignore it.
type Tag interface {
	// ID returns the tag's wire-format type id. It is fixed per variant,
	// except for List whose element id (not its own id) varies at runtime.
	ID() ID

	// Write encodes the tag payload to w.
	Write(w *Writer, depth int, reg *Registry) error

	// Read decodes the tag payload from r, replacing the receiver's value.
	Read(r *Reader, depth int, reg *Registry) error
}
