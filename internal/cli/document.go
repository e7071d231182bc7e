package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/lodeworks/nbtkit/pkg/convert"
	"github.com/lodeworks/nbtkit/pkg/nbt"
	"github.com/lodeworks/nbtkit/pkg/snbt"
)

// =============================================================================
// Formats
// =============================================================================

// format names a document encoding accepted on the command line.
type format string

const (
	formatAuto format = "auto"
	formatNBT  format = "nbt"
	formatSNBT format = "snbt"
	formatJSON format = "json"
	formatCBOR format = "cbor"
)

// parseFormat validates a --from/--to flag value.
func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatAuto, formatNBT, formatSNBT, formatJSON, formatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want nbt, snbt, json, or cbor)", s)
	}
}

// extFormats maps file extensions to formats for detection.
var extFormats = map[string]format{
	".nbt":  formatNBT,
	".dat":  formatNBT,
	".snbt": formatSNBT,
	".json": formatJSON,
	".cbor": formatCBOR,
}

// detectFormat resolves formatAuto using the file extension, then the leading
// bytes. Gzip and a compound lead byte mean binary; brace-ish text means
// stringified.
func detectFormat(path string, data []byte) (format, error) {
	if f, ok := extFormats[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	if len(data) == 0 {
		return "", fmt.Errorf("cannot detect format of empty input")
	}
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return formatNBT, nil
	}
	// The compound lead byte 0x0a is also '\n', so classify text before the
	// binary heuristic or newline-led stringified input reads as binary.
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{', '[', '"', '\'':
			return formatSNBT, nil
		}
	}
	if nbt.ID(data[0]) == nbt.IDCompound {
		return formatNBT, nil
	}
	return "", fmt.Errorf("cannot detect format of %s; pass --from", path)
}

// =============================================================================
// Document
// =============================================================================

// document is a decoded tag tree plus the root name, which only the binary
// format carries.
type document struct {
	Name string
	Root nbt.Tag
}

// readDocument loads and decodes a file. "-" reads stdin. The returned
// format is the one actually used after auto-detection.
func readDocument(path string, f format) (*document, format, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, "", err
	}

	if f == formatAuto {
		f, err = detectFormat(path, data)
		if err != nil {
			return nil, "", err
		}
	}

	doc, err := decodeDocument(data, f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s as %s: %w", path, f, err)
	}
	return doc, f, nil
}

// decodeDocument parses raw bytes in the given format.
func decodeDocument(data []byte, f format) (*document, error) {
	switch f {
	case formatNBT:
		name, root, err := nbt.Unmarshal(data, nil)
		if err != nil {
			return nil, err
		}
		return &document{Name: name, Root: root}, nil
	case formatSNBT:
		root, err := snbt.Parse(string(data))
		if err != nil {
			return nil, err
		}
		return &document{Root: root}, nil
	case formatJSON:
		root, err := convert.UnmarshalJSON(data)
		if err != nil {
			return nil, err
		}
		return &document{Root: root}, nil
	case formatCBOR:
		root, err := convert.UnmarshalCBOR(data)
		if err != nil {
			return nil, err
		}
		return &document{Root: root}, nil
	default:
		return nil, fmt.Errorf("cannot decode format %q", f)
	}
}

// encodeDocument renders the document in the given format. Binary output
// requires a compound root; indent applies to the text formats only, and
// gzipped applies to binary only.
func encodeDocument(doc *document, f format, indent string, gzipped bool) ([]byte, error) {
	switch f {
	case formatNBT:
		root, ok := doc.Root.(*nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%w: root is %s", nbt.ErrInvalidRoot, doc.Root.ID())
		}
		data, err := nbt.Marshal(doc.Name, root, nil)
		if err != nil {
			return nil, err
		}
		if gzipped {
			return gzipBytes(data)
		}
		return data, nil
	case formatSNBT:
		s, err := snbt.EncodeIndent(doc.Root, indent)
		if err != nil {
			return nil, err
		}
		return append([]byte(s), '\n'), nil
	case formatJSON:
		var data []byte
		var err error
		if indent == "" {
			data, err = convert.MarshalJSON(doc.Root)
		} else {
			data, err = convert.MarshalJSONIndent(doc.Root, indent)
		}
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case formatCBOR:
		return convert.MarshalCBOR(doc.Root)
	default:
		return nil, fmt.Errorf("cannot encode format %q", f)
	}
}

// writeOutput writes data to path, or stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// gzipBytes compresses data in memory.
func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
