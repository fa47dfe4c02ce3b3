// Package base122 implements Base122, a binary-to-text encoding that packs
// 7 payload bits into each output byte, making it roughly 14% denser than
// Base64.
//
// The encoder walks the input as a bit stream and emits each 7-bit chunk as a
// single ASCII byte. Six chunk values are unsafe for textual transports and
// are instead carried inside a two-byte escape shaped like a 2-byte UTF-8
// sequence, so the output is always well-formed UTF-8.
package base122

import "errors"

// illegals are the chunk values that cannot appear directly in the output.
// The position of a value in this table is its illegal index, which is
// written into the escape sequence; the order must never change.
var illegals = [6]byte{
	0x00, // NUL, truncates C strings
	0x0A, // LF, breaks single-line transports
	0x0D, // CR, breaks single-line transports
	0x22, // double quote, breaks JSON/HTML attributes
	0x26, // ampersand, starts HTML entities
	0x5C, // backslash, starts escape sequences
}

// shortened is the reserved illegal index signalling that the escape carries
// only its own 7-bit payload with no embedded follow-up chunk. It is used
// when a dangerous chunk is the final chunk of the stream.
const shortened = 0b111

// Escape layout, an 11-bit value split across a 2-byte UTF-8 sequence
// (110xxxxx 10yyyyyy): bits 10-8 hold the illegal index or the shortened
// marker, bit 7 is always set, bits 6-0 hold the payload chunk.
const (
	escByte1   = 0b1100_0010 // leading byte prefix, fixed bit 7 of the scalar included
	escByte2   = 0b1000_0000 // continuation byte prefix
	escFixed   = 0b000_1000_0000
	escIndex   = 0b111_0000_0000
	escPayload = 0b000_0111_1111
	escMax     = 0x7FF // largest scalar representable in two bytes
)

// ErrInvalidSequence is returned by [Decode] when the input contains a scalar
// value that is not a safe single-byte chunk or a well-formed two-byte
// escape. It is wrapped with the byte offset of the offending scalar; use
// [errors.Is] to test for it.
var ErrInvalidSequence = errors.New("invalid sequence")

// illegalIndex returns the position of chunk in the dangerous-character
// table, or -1 if the chunk is safe to emit directly.
func illegalIndex(chunk byte) int {
	for i, v := range illegals {
		if v == chunk {
			return i
		}
	}
	return -1
}
