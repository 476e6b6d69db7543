package bridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandCR(t *testing.T) {
	testCases := []struct {
		name   string
		in     []byte
		expect []byte
	}{
		{
			name: "empty",
		},
		{
			name:   "no carriage return",
			in:     []byte("hello"),
			expect: []byte("hello"),
		},
		{
			name:   "at command",
			in:     []byte("AT+GMR\r"),
			expect: []byte("AT+GMR\r\n"),
		},
		{
			name:   "multiple",
			in:     []byte("a\rb\r"),
			expect: []byte("a\r\nb\r\n"),
		},
		{
			name:   "carriage return only",
			in:     []byte("\r"),
			expect: []byte("\r\n"),
		},
		{
			name:   "already crlf gets extra newline",
			in:     []byte("x\r\n"),
			expect: []byte("x\r\n\n"),
		},
		{
			name:   "binary passes through",
			in:     []byte{0x00, 0xff, 0x0d, 0x7f},
			expect: []byte{0x00, 0xff, 0x0d, 0x0a, 0x7f},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := ExpandCR(tc.in)
			require.Equal(t, tc.expect, out)
			require.Len(t, out, len(tc.in)+bytes.Count(tc.in, []byte{'\r'}))
		})
	}
}

func TestExpandCRNoCopyWithoutCR(t *testing.T) {
	in := []byte("no translation needed")
	out := ExpandCR(in)
	require.Same(t, &in[0], &out[0])
}
