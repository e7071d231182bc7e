package nbt

import (
	"errors"
	"unicode/utf16"
)

// Modified UTF-8 as produced by java.io.DataOutput.writeUTF: U+0000 encodes
// as the two-byte pair 0xC0 0x80, and code points outside the BMP encode as
// a UTF-16 surrogate pair with each surrogate in the three-byte form. No
// four-byte sequences appear on the wire.

var errInvalidMUTF8 = errors.New("invalid modified UTF-8")

// appendMUTF8 appends the modified UTF-8 encoding of s to dst.
func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		default:
			r1, r2 := utf16.EncodeRune(r)
			dst = append(dst, 0xE0|byte(r1>>12), 0x80|byte(r1>>6&0x3F), 0x80|byte(r1&0x3F))
			dst = append(dst, 0xE0|byte(r2>>12), 0x80|byte(r2>>6&0x3F), 0x80|byte(r2&0x3F))
		}
	}
	return dst
}

// decodeMUTF8 converts a modified UTF-8 byte sequence to a Go string.
// Truncated or over-long lead bytes are rejected; unpaired surrogates decode
// to U+FFFD, matching how Java strings surface in Go.
func decodeMUTF8(p []byte) (string, error) {
	units := make([]uint16, 0, len(p))
	for i := 0; i < len(p); {
		b := p[i]
		switch {
		case b&0x80 == 0:
			units = append(units, uint16(b))
			i++
		case b&0xE0 == 0xC0:
			if i+1 >= len(p) || p[i+1]&0xC0 != 0x80 {
				return "", errInvalidMUTF8
			}
			units = append(units, uint16(b&0x1F)<<6|uint16(p[i+1]&0x3F))
			i += 2
		case b&0xF0 == 0xE0:
			if i+2 >= len(p) || p[i+1]&0xC0 != 0x80 || p[i+2]&0xC0 != 0x80 {
				return "", errInvalidMUTF8
			}
			units = append(units, uint16(b&0x0F)<<12|uint16(p[i+1]&0x3F)<<6|uint16(p[i+2]&0x3F))
			i += 3
		default:
			return "", errInvalidMUTF8
		}
	}
	return string(utf16.Decode(units)), nil
}
