package base122

import (
	"fmt"
	"unicode/utf8"
)

// Decode reverses [Encode], reassembling the original byte slice from the
// 7-bit chunks carried by encoded. It fails with an error wrapping
// [ErrInvalidSequence] if encoded contains anything outside the output
// alphabet of Encode: malformed UTF-8, a scalar needing three or more bytes,
// or a two-byte scalar whose fixed bit is clear or whose index field names
// neither a dangerous character nor the shortened marker. No partial output
// is returned on failure.
func Decode(encoded string) ([]byte, error) {
	w := bitWriter{out: make([]byte, 0, len(encoded)*7/8)}

	for i := 0; i < len(encoded); {
		c, size := utf8.DecodeRuneInString(encoded[i:])

		switch {
		case c == utf8.RuneError && size <= 1:
			return nil, fmt.Errorf("base122: %w: malformed UTF-8 at byte %d", ErrInvalidSequence, i)

		case c < utf8.RuneSelf:
			w.push(byte(c))

		case c <= escMax:
			// Two-byte escape: 3-bit illegal index, fixed bit, 7-bit payload.
			if c&escFixed == 0 {
				return nil, fmt.Errorf("base122: %w: scalar %U at byte %d has the fixed bit clear", ErrInvalidSequence, c, i)
			}
			index := (c & escIndex) >> 8
			payload := byte(c & escPayload)
			if index != shortened {
				if int(index) >= len(illegals) {
					return nil, fmt.Errorf("base122: %w: scalar %U at byte %d has illegal index %d", ErrInvalidSequence, c, i, index)
				}
				w.push(illegals[index])
			}
			w.push(payload)

		default:
			return nil, fmt.Errorf("base122: %w: scalar %U at byte %d is outside the encoding alphabet", ErrInvalidSequence, c, i)
		}

		i += size
	}

	// Any bits still in the accumulator are encoder padding and are dropped.
	return w.out, nil
}
