package nbt

import "fmt"

// Factory produces a blank, mutable tag instance ready to be populated by
// its Read method.
type Factory func() Tag

// Registry maps wire-format type ids to tag factories. The decoder resolves
// every type id it encounters through a registry before delegating to the
// instantiated tag's Read.
//
// A registry is safe for concurrent lookups once all Register calls have
// completed. Registration itself is not synchronized; configure the registry
// before sharing it across goroutines.
type Registry struct {
	factories map[ID]Factory
}

// NewRegistry returns a registry pre-populated with the built-in tag types
// (ids 1–12). Id 0 is the End sentinel and intentionally has no factory: it
// terminates compounds on the wire and never instantiates.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[ID]Factory, 16)}
	r.Register(IDByte, func() Tag { return new(Byte) })
	r.Register(IDShort, func() Tag { return new(Short) })
	r.Register(IDInt, func() Tag { return new(Int) })
	r.Register(IDLong, func() Tag { return new(Long) })
	r.Register(IDFloat, func() Tag { return new(Float) })
	r.Register(IDDouble, func() Tag { return new(Double) })
	r.Register(IDByteArray, func() Tag { return new(ByteArray) })
	r.Register(IDString, func() Tag { return new(String) })
	r.Register(IDList, func() Tag { return NewList() })
	r.Register(IDCompound, func() Tag { return NewCompound() })
	r.Register(IDIntArray, func() Tag { return new(IntArray) })
	r.Register(IDLongArray, func() Tag { return new(LongArray) })
	return r
}

// Register associates id with a factory. Re-registering an already bound id
// replaces the previous factory (last wins), which allows custom tag types
// to shadow built-ins.
func (r *Registry) Register(id ID, f Factory) {
	r.factories[id] = f
}

// Factory returns the factory bound to id, or [ErrUnknownType] if none is
// registered.
func (r *Registry) Factory(id ID) (Factory, error) {
	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownType, byte(id))
	}
	return f, nil
}

// New instantiates a blank tag for id. It returns [ErrUnknownType] if no
// factory is registered, or [ErrNilTag] if the factory fails to produce an
// instance.
func (r *Registry) New(id ID) (Tag, error) {
	f, err := r.Factory(id)
	if err != nil {
		return nil, err
	}
	t := f()
	if t == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNilTag, byte(id))
	}
	return t, nil
}

// builtin is the registry used when callers pass a nil *Registry. It is
// created once and only ever read.
var builtin = NewRegistry()

// orBuiltin substitutes the shared built-in registry for nil.
func (r *Registry) orBuiltin() *Registry {
	if r == nil {
		return builtin
	}
	return r
}
