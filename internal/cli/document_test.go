package cli

import (
	"bytes"
	"testing"

	"github.com/lodeworks/nbtkit/pkg/nbt"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    format
		wantErr bool
	}{
		{"nbt", formatNBT, false},
		{"SNBT", formatSNBT, false},
		{"json", formatJSON, false},
		{"cbor", formatCBOR, false},
		{"auto", formatAuto, false},
		{"", "", true},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFormat(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFormat: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    []byte
		want    format
		wantErr bool
	}{
		{"DatExtension", "level.dat", []byte{0x00}, formatNBT, false},
		{"SnbtExtension", "x.snbt", []byte("{}"), formatSNBT, false},
		{"JsonExtension", "x.json", []byte("{}"), formatJSON, false},
		{"CborExtension", "x.cbor", []byte{0xa0}, formatCBOR, false},
		{"GzipMagic", "blob", []byte{0x1f, 0x8b, 0x08}, formatNBT, false},
		{"CompoundLead", "blob", []byte{0x0a, 0x00, 0x00, 0x00}, formatNBT, false},
		{"BraceText", "blob", []byte("{a:1}"), formatSNBT, false},
		{"QuotedText", "blob", []byte(`"hi"`), formatSNBT, false},
		{"NewlineLedText", "blob", []byte("\n{a:1}"), formatSNBT, false},
		{"IndentedText", "blob", []byte("  [1,2]"), formatSNBT, false},
		{"Empty", "blob", nil, "", true},
		{"UnknownBinary", "blob", []byte{0xfe, 0xed}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectFormat(tt.path, tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("detectFormat succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("detectFormat: %v", err)
			}
			if got != tt.want {
				t.Errorf("detectFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

func testDoc() *document {
	root := nbt.NewCompound()
	root.Put("score", nbt.NewInt(42))
	root.Put("name", nbt.NewString("Steve"))
	return &document{Name: "save", Root: root}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := testDoc()

	for _, f := range []format{formatNBT, formatSNBT, formatJSON, formatCBOR} {
		t.Run(string(f), func(t *testing.T) {
			data, err := encodeDocument(doc, f, "", false)
			if err != nil {
				t.Fatalf("encodeDocument: %v", err)
			}
			got, err := decodeDocument(data, f)
			if err != nil {
				t.Fatalf("decodeDocument: %v", err)
			}
			c, ok := got.Root.(*nbt.Compound)
			if !ok {
				t.Fatalf("root = %#v, want compound", got.Root)
			}
			if !nbt.Equal(c.Get("name"), nbt.NewString("Steve")) {
				t.Errorf("name = %#v, want String(Steve)", c.Get("name"))
			}
			if f == formatNBT && got.Name != "save" {
				t.Errorf("root name = %q, want %q", got.Name, "save")
			}
		})
	}
}

func TestEncodeDocumentGzip(t *testing.T) {
	data, err := encodeDocument(testDoc(), formatNBT, "", true)
	if err != nil {
		t.Fatalf("encodeDocument: %v", err)
	}
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		t.Fatalf("output missing gzip magic: % x", data[:min(len(data), 4)])
	}
	// The binary decoder transparently handles gzip.
	got, err := decodeDocument(data, formatNBT)
	if err != nil {
		t.Fatalf("decodeDocument: %v", err)
	}
	if got.Name != "save" {
		t.Errorf("root name = %q, want %q", got.Name, "save")
	}
}

func TestEncodeDocumentRejectsNonCompoundBinaryRoot(t *testing.T) {
	doc := &document{Root: nbt.NewInt(5)}
	if _, err := encodeDocument(doc, formatNBT, "", false); err == nil {
		t.Fatal("encodeDocument succeeded with scalar root, want error")
	}
}

func TestEncodeDocumentIndent(t *testing.T) {
	doc := testDoc()
	data, err := encodeDocument(doc, formatSNBT, "  ", false)
	if err != nil {
		t.Fatalf("encodeDocument: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  ")) {
		t.Errorf("indented output has no indented lines: %q", data)
	}
}
