//go:build baremetal

package board

import (
	"machine"
	"time"
)

// Challenger RP2040 WiFi wiring for the ESP co-processor.
const (
	ESPResetPin = machine.GPIO19
	ESPModePin  = machine.GPIO24
)

// PinResetter drives the co-processor reset and boot-mode pins directly.
type PinResetter struct {
	ResetPin machine.Pin
	ModePin  machine.Pin
}

// NewPinResetter configures the pins as outputs.
func NewPinResetter(reset, mode machine.Pin) *PinResetter {
	reset.Configure(machine.PinConfig{Mode: machine.PinOutput})
	mode.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &PinResetter{ResetPin: reset, ModePin: mode}
}

// Reset implements Resetter: reset low, mode high for passthrough or low
// for download, reset high.
func (r *PinResetter) Reset(flash bool) error {
	r.ResetPin.Low()
	r.ModePin.Set(!flash)
	time.Sleep(time.Millisecond)
	r.ResetPin.High()
	return nil
}
