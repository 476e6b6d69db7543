//go:build baremetal

package main

import (
	"context"
	"machine"

	"github.com/scogswell/espbridge/pkg/board"
	"github.com/scogswell/espbridge/pkg/bridge"
	"github.com/scogswell/espbridge/pkg/endpoint"
	fx "github.com/scogswell/espbridge/pkg/framework"
	"github.com/scogswell/espbridge/pkg/indicator"
)

// Build-time policy, standing in for the flags of OS builds.
const (
	flashMode   = false
	translateCR = true
	localEcho   = false
)

// Challenger RP2040 WiFi wiring for the ESP UART.
const (
	espBaud = 115200
	espTX   = machine.GPIO16
	espRX   = machine.GPIO17
)

func main() {
	cfg := bridge.Config{
		FlashMode:   flashMode,
		TranslateCR: translateCR,
		LocalEcho:   localEcho,
	}.Resolved()

	host := endpoint.OpenUSB()
	device, err := endpoint.OpenUART(machine.UART0, espBaud, espTX, espRX)
	if err != nil {
		println("cannot configure ESP UART:", err.Error())
		return
	}

	resetter := board.NewPinResetter(board.ESPResetPin, board.ESPModePin)
	_ = resetter.Reset(cfg.FlashMode)

	relay := bridge.New(cfg, host, device,
		indicator.NewNeopixel(machine.NEOPIXEL),
		indicator.NewLED(machine.LED))
	_ = relay.AwaitHost(context.Background())
	fx.NewLoop().Add(relay).RunOrFail()
}
