package base122

// EncodedLen returns the exact encoded length of n input bytes when no chunk
// hits the dangerous-character table: one output byte per 7-bit chunk.
func EncodedLen(n int) int {
	return (n*8 + 6) / 7
}

// MaxEncodedLen returns the maximum possible encoded length of n input bytes.
// Every chunk costs at most two output bytes (a dangerous chunk at the end of
// the stream rides alone in a two-byte escape), so twice the chunk count is a
// safe upper bound for sizing destination buffers.
func MaxEncodedLen(n int) int {
	return 2 * EncodedLen(n)
}
