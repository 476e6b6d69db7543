//go:build baremetal

package indicator

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Neopixel drives a single ws2812 pixel as the status indicator.
type Neopixel struct {
	dev ws2812.Device
	buf [1]color.RGBA
}

// NewNeopixel configures the pin and wraps it as a Pixel.
func NewNeopixel(pin machine.Pin) *Neopixel {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Neopixel{dev: ws2812.NewWS2812(pin)}
}

// SetStatus implements Pixel.
func (n *Neopixel) SetStatus(s Status) error {
	n.buf[0] = s.RGBA()
	return n.dev.WriteColors(n.buf[:])
}

// LED is a plain pin used as the activity light.
type LED struct {
	pin machine.Pin
}

// NewLED configures the pin as an output.
func NewLED(pin machine.Pin) *LED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &LED{pin: pin}
}

// Set implements ActivityLight.
func (l *LED) Set(on bool) {
	l.pin.Set(on)
}
