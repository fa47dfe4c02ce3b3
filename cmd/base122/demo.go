package main

import (
	"bytes"
	"fmt"

	"github.com/mnightingale/base122"
)

// DemoCommand walks through a handful of example inputs, round-tripping each
// one and comparing the encoded size against Base64.
type DemoCommand struct{}

func (c *DemoCommand) Execute(args []string) error {
	fmt.Println("=== Base122 Encoding Demo ===")
	fmt.Println()

	cases := []struct {
		input       string
		description string
	}{
		{"", "Empty string"},
		{"A", "Single character"},
		{"Hello", "Simple text"},
		{"Hello, World!", "Text with punctuation"},
		{"The quick brown fox jumps over the lazy dog", "Long text"},
		{"Text with\ndangerous\rcharacters\"&\\", "Dangerous characters"},
	}

	for _, tc := range cases {
		fmt.Printf("Test: %s\n", tc.description)
		fmt.Printf("  Input:   %q\n", tc.input)

		encoded := base122.Encode([]byte(tc.input))
		fmt.Printf("  Encoded: %q\n", encoded)

		decoded, err := base122.Decode(encoded)
		switch {
		case err != nil:
			fmt.Printf("  Decode failed: %v\n", err)
		case string(decoded) == tc.input:
			fmt.Println("  Round-trip ok")
		default:
			fmt.Println("  Round-trip MISMATCH")
		}

		base64Size := base64Len(len(tc.input))
		savings := 0.0
		if base64Size > 0 {
			savings = 100 * float64(base64Size-len(encoded)) / float64(base64Size)
		}
		fmt.Printf("  Size: original %d, base64 %d, base122 %d (%.1f%% smaller)\n",
			len(tc.input), base64Size, len(encoded), savings)
		fmt.Println()
	}

	fmt.Println("=== Binary Data Test ===")
	binary := make([]byte, 32)
	for i := range binary {
		binary[i] = byte(i)
	}

	encoded := base122.Encode(binary)
	fmt.Printf("Binary input: % x ...\n", binary[:8])
	fmt.Printf("Encoded length: %d bytes\n", len(encoded))

	decoded, err := base122.Decode(encoded)
	switch {
	case err != nil:
		fmt.Printf("Binary decode failed: %v\n", err)
	case bytes.Equal(decoded, binary):
		fmt.Println("Binary round-trip ok")
	default:
		fmt.Println("Binary round-trip MISMATCH")
	}

	fmt.Printf("Expansion ratio: %.3fx\n", float64(len(encoded))/float64(len(binary)))
	return nil
}

// base64Len is the standard-padding Base64 length for n input bytes.
func base64Len(n int) int {
	return (n + 2) / 3 * 4
}
