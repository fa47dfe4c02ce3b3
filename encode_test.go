package base122

import (
	"bytes"
	randv2 "math/rand/v2"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

type encodeCase struct {
	name     string
	input    []byte
	expected []byte
}

func TestEncodeSimple(t *testing.T) {
	cases := []encodeCase{
		{"EMPTY", []byte{}, []byte{}},
		{"A", []byte{0x41}, []byte{0x20, 0x40}},
		{"NUL", []byte{0x00}, []byte{0xC2, 0x80}},                       // dangerous first chunk, escape folds the trailing chunk
		{"LF", []byte{0x0A}, []byte{0x05, 0xDE, 0x80}},                  // trailing chunk is dangerous, shortened escape
		{"FF", []byte{0xFF}, []byte{0x7F, 0x40}},                        // no dangerous chunks at all
		{"NUL_NUL", []byte{0x00, 0x00}, []byte{0xC2, 0x80, 0xDE, 0x80}}, // escape then shortened escape for the 2-bit tail
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(tc.input)
			require.Equal(t, tc.expected, []byte(encoded))
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	require.Equal(t, "", Encode([]byte{}))
}

// Every scalar in the output must be a single byte in [0,127] or a two-byte
// escape with the fixed bit set. Nothing longer may ever be produced.
func TestEncodeAlphabet(t *testing.T) {
	raw := make([]byte, 64*1024)
	_, err := randv2.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))).Read(raw)
	require.NoError(t, err)

	inputs := map[string][]byte{
		"random":        raw,
		"all dangerous": bytes.Repeat(illegals[:], 1024),
		"text":          bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 100),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			encoded := Encode(input)
			require.True(t, utf8.ValidString(encoded))

			for _, c := range encoded {
				if c < utf8.RuneSelf {
					continue
				}
				require.LessOrEqual(t, c, rune(escMax), "scalar %U needs more than two bytes", c)
				require.NotZero(t, c&escFixed, "scalar %U has the fixed bit clear", c)
			}
		})
	}
}

func TestEncodedLenExact(t *testing.T) {
	// 0xFF bytes never produce a dangerous chunk, so the encoded length must
	// hit the EncodedLen bound exactly at every size.
	for n := 0; n <= 256; n++ {
		encoded := Encode(bytes.Repeat([]byte{0xFF}, n))
		require.Len(t, encoded, EncodedLen(n), "input length %d", n)
	}
}

func TestEncodeLengthBounds(t *testing.T) {
	raw := make([]byte, 4096)
	_, err := randv2.NewChaCha8([32]byte(bytes.Repeat([]byte{0x5E, 0xED, 0x5E, 0xED}, 8))).Read(raw)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 2, 7, 8, 100, 1024, 4096} {
		encoded := Encode(raw[:n])
		require.GreaterOrEqual(t, len(encoded), n)
		require.LessOrEqual(t, len(encoded), MaxEncodedLen(n))
	}
}

func BenchmarkEncode(b *testing.B) {
	raw := make([]byte, 1024*1024)
	_, err := randv2.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))).Read(raw)
	require.NoError(b, err)

	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for b.Loop() {
		_ = Encode(raw)
	}
}
