//go:build !baremetal

package board

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scogswell/espbridge/pkg/bridge"
)

func TestBannerReportsModes(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     bridge.Config
		expect  []string
		exclude []string
	}{
		{
			name:    "translate",
			cfg:     bridge.Config{TranslateCR: true},
			expect:  []string{"adding \\n to \\r", "Not echoing"},
			exclude: []string{"Flash programming"},
		},
		{
			name:   "flash",
			cfg:    bridge.Config{FlashMode: true},
			expect: []string{"Flash programming mode enabled", "Not changing end-of-line"},
		},
		{
			name:   "echo",
			cfg:    bridge.Config{LocalEcho: true},
			expect: []string{"Echoing input locally"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Banner(&buf, tc.cfg.Resolved())
			for _, want := range tc.expect {
				require.Contains(t, buf.String(), want)
			}
			for _, unwanted := range tc.exclude {
				require.NotContains(t, buf.String(), unwanted)
			}
		})
	}
}

type fakeLines struct {
	ops []string
}

func (f *fakeLines) SetDTR(v bool) error {
	f.ops = append(f.ops, "dtr="+boolStr(v))
	return nil
}

func (f *fakeLines) SetRTS(v bool) error {
	f.ops = append(f.ops, "rts="+boolStr(v))
	return nil
}

func boolStr(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func TestSerialResetterRunMode(t *testing.T) {
	lines := &fakeLines{}
	r := &SerialResetter{Lines: lines, SettleTime: time.Millisecond}
	require.NoError(t, r.Reset(false))
	require.Equal(t, []string{"dtr=0", "rts=1", "rts=0", "dtr=0"}, lines.ops)
}

func TestSerialResetterDownloadMode(t *testing.T) {
	lines := &fakeLines{}
	r := &SerialResetter{Lines: lines, SettleTime: time.Millisecond}
	require.NoError(t, r.Reset(true))
	require.Equal(t, []string{"dtr=1", "rts=1", "rts=0", "dtr=0"}, lines.ops)
}
