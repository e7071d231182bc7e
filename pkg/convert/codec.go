package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/lodeworks/nbtkit/pkg/nbt"
)

// MarshalJSON renders a tag tree as JSON via the native mapping. Compound
// keys come out sorted because encoding/json sorts map keys.
func MarshalJSON(t nbt.Tag) ([]byte, error) {
	return json.Marshal(ToNative(t))
}

// MarshalJSONIndent is MarshalJSON with indented output.
func MarshalJSONIndent(t nbt.Tag, indent string) ([]byte, error) {
	return json.MarshalIndent(ToNative(t), "", indent)
}

// UnmarshalJSON parses JSON into a tag tree. Every JSON number becomes a
// Double unless it is an exact integer, which becomes Int or Long by range.
func UnmarshalJSON(data []byte) (nbt.Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode json: trailing input")
	}
	return FromNative(normalizeJSON(v))
}

// MarshalCBOR renders a tag tree as CBOR via the native mapping. Byte
// arrays encode as CBOR byte strings; sized integer tags widen to plain
// CBOR integers.
func MarshalCBOR(t nbt.Tag) ([]byte, error) {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(ToNative(t))
}

// UnmarshalCBOR parses CBOR into a tag tree.
func UnmarshalCBOR(data []byte) (nbt.Tag, error) {
	mode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, err
	}
	var v any
	if err := mode.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	return FromNative(v)
}

// normalizeJSON rewrites json.Number leaves into int64 or float64 so
// FromNative sees concrete numeric types.
func normalizeJSON(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, _ := n.Float64()
		return f
	case []any:
		for i, e := range n {
			n[i] = normalizeJSON(e)
		}
		return n
	case map[string]any:
		for k, e := range n {
			n[k] = normalizeJSON(e)
		}
		return n
	default:
		return v
	}
}
