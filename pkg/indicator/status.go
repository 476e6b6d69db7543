// Package indicator maps relay states to visual outputs.
package indicator

import "image/color"

// Status enumerates the mutually exclusive relay states shown on the
// indicator. Within one loop iteration a later write wins.
type Status int

// Relay states in display precedence order.
const (
	StatusWaiting Status = iota // no host connection
	StatusIdle                  // connected, no traffic
	StatusHostActivity          // reading bytes from the host
	StatusDeviceActivity        // reading bytes from the device
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusIdle:
		return "idle"
	case StatusHostActivity:
		return "host-activity"
	case StatusDeviceActivity:
		return "device-activity"
	}
	return "unknown"
}

// RGBA returns the fixed color bound to the state, dimmed for neopixels.
func (s Status) RGBA() color.RGBA {
	switch s {
	case StatusIdle:
		return color.RGBA{B: 0x19}
	case StatusHostActivity:
		return color.RGBA{G: 0x19}
	case StatusDeviceActivity:
		return color.RGBA{R: 0x19}
	}
	return color.RGBA{R: 0x19, G: 0x19, B: 0x19}
}

// Pixel is a write-only sink showing a Status. Writes overwrite any prior
// appearance and failures are cosmetic, never functional.
type Pixel interface {
	SetStatus(Status) error
}

// ActivityLight is a write-only boolean sink toggled around each receive
// and forward as a heartbeat. It carries no state.
type ActivityLight interface {
	Set(on bool)
}

// NopLight discards heartbeat toggles.
type NopLight struct{}

// Set implements ActivityLight.
func (NopLight) Set(bool) {}
