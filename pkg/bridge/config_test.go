package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigResolved(t *testing.T) {
	testCases := []struct {
		name   string
		in     Config
		expect Config
	}{
		{
			name:   "defaults",
			in:     defaultConfig,
			expect: Config{TranslateCR: true},
		},
		{
			name:   "flash forces translation and echo off",
			in:     Config{FlashMode: true, TranslateCR: true, LocalEcho: true},
			expect: Config{FlashMode: true},
		},
		{
			name:   "translation forces echo off",
			in:     Config{TranslateCR: true, LocalEcho: true},
			expect: Config{TranslateCR: true},
		},
		{
			name:   "echo alone survives",
			in:     Config{LocalEcho: true},
			expect: Config{LocalEcho: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.in.Resolved())
		})
	}
}
