// Package codec implements the byte-encoding primitives of NIST SP 800-185
// §2.3: left_encode, right_encode, encode_string, and byte_pad, plus the
// XOR helper the sponge and protocol layers build on.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/lukechampine/fastxor"
)

// LeftEncode implements SP 800-185 §2.3.1. It prepends a single length byte
// to the minimal big-endian encoding of x.
func LeftEncode(x uint64) []byte {
	if x == 0 {
		return []byte{0x01, 0x00}
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	trimmed := trimLeadingZeros(buf[:])
	out := make([]byte, 0, len(trimmed)+1)
	out = append(out, byte(len(trimmed)))
	out = append(out, trimmed...)
	return out
}

// RightEncode implements SP 800-185 §2.3.1, appending the length byte after
// the encoded value instead of before it.
func RightEncode(x uint64) []byte {
	if x == 0 {
		return []byte{0x00, 0x01}
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	trimmed := trimLeadingZeros(buf[:])
	out := make([]byte, 0, len(trimmed)+1)
	out = append(out, trimmed...)
	out = append(out, byte(len(trimmed)))
	return out
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// EncodeString implements SP 800-185 §2.3.2: left_encode(8*|s|) || s.
func EncodeString(s []byte) []byte {
	out := LeftEncode(uint64(len(s)) * 8)
	return append(out, s...)
}

// BytePad implements SP 800-185 §2.3.3: prepend left_encode(w) to x and
// pad with zero bytes until the total length is a positive multiple of w.
func BytePad(x []byte, w int) []byte {
	if w <= 0 {
		panic(fmt.Sprintf("codec: byte_pad width must be positive, got %d", w))
	}
	z := LeftEncode(uint64(w))
	z = append(z, x...)
	padLen := w - (len(z) % w)
	if padLen == w {
		padLen = 0
	}
	z = append(z, make([]byte, padLen)...)
	return z
}

// XorBytes XORs a and b in place into dst, which must be exactly as long as
// both operands. It panics on length mismatch, mirroring the assert in the
// teacher's fastxor-based helper.
func XorBytes(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("codec: xor_bytes requires equal-length buffers")
	}
	fastxor.Bytes(dst, a, b)
}
