package base122

// bitReader walks a byte slice as a bit stream, handing out 7-bit chunks.
// Bits are consumed MSB-first within each byte; a chunk that straddles a byte
// boundary takes the tail of the current byte as its high bits and the head
// of the next byte as its low bits.
type bitReader struct {
	src []byte
	idx int
	bit uint // bits already consumed from src[idx], 0..7
}

// next returns the next 7-bit chunk, or ok=false once every input bit has
// been handed out. The final chunk is short when len(src)*8 is not a multiple
// of 7; its missing low-order bits are zero. A chunk made purely of padding
// is never produced.
func (r *bitReader) next() (chunk byte, ok bool) {
	if r.idx >= len(r.src) {
		return 0, false
	}

	// Remaining bits of the current byte, aligned to the top of the chunk.
	chunk = (r.src[r.idx] << r.bit) >> 1

	r.bit += 7
	if r.bit < 8 {
		return chunk, true
	}

	r.bit -= 8
	r.idx++
	if r.idx >= len(r.src) {
		// Short final chunk, low r.bit bits are implicit zeros.
		return chunk, true
	}
	if r.bit > 0 {
		chunk |= r.src[r.idx] >> (8 - r.bit)
	}
	return chunk, true
}

// bitWriter reassembles 7-bit chunks into bytes. Bits beyond the last
// complete byte are never flushed, which is what lets the format omit an
// explicit length field: the encoder's zero padding is always shorter than a
// byte and falls off the end.
type bitWriter struct {
	out []byte
	cur byte
	bit uint // bits accumulated in cur, 0..7
}

// push shifts a 7-bit chunk into the accumulator, appending one output byte
// whenever 8 bits are available and carrying the remainder.
func (w *bitWriter) push(chunk byte) {
	v := chunk << 1 // chunk occupies bits 7..1

	w.cur |= v >> w.bit
	w.bit += 7
	if w.bit >= 8 {
		w.out = append(w.out, w.cur)
		w.bit -= 8
		w.cur = v << (7 - w.bit)
	}
}
