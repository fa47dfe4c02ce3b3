package base122

// Encode returns the Base122 encoding of src. The result contains only
// single-byte scalars in [0,127] and two-byte escape sequences, so it is
// always valid UTF-8. Empty input encodes to the empty string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))+2), src))
}

// AppendEncode appends the Base122 encoding of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte) []byte {
	r := bitReader{src: src}

	for {
		chunk, ok := r.next()
		if !ok {
			break
		}

		k := illegalIndex(chunk)
		if k < 0 {
			dst = append(dst, chunk)
			continue
		}

		// Dangerous chunk: fold the following chunk into a two-byte escape.
		// When the dangerous chunk is the last one, the shortened marker
		// tells the decoder the payload is the dangerous chunk itself.
		index := byte(k)
		payload, ok := r.next()
		if !ok {
			index = shortened
			payload = chunk
		}

		b1 := byte(escByte1) | index<<2 | payload>>6
		b2 := byte(escByte2) | payload&0b0011_1111
		dst = append(dst, b1, b2)
	}

	return dst
}
