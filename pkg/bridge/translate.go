package bridge

import "bytes"

// ExpandCR returns the chunk with every carriage return expanded into CRLF.
// All other bytes pass through unchanged, preserving order. A chunk without
// carriage returns is returned as-is without copying.
func ExpandCR(chunk []byte) []byte {
	n := bytes.Count(chunk, []byte{'\r'})
	if n == 0 {
		return chunk
	}
	out := make([]byte, 0, len(chunk)+n)
	for _, b := range chunk {
		out = append(out, b)
		if b == '\r' {
			out = append(out, '\n')
		}
	}
	return out
}
