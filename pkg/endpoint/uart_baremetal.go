//go:build baremetal

package endpoint

import "machine"

// UART adapts a machine UART as the device-facing Endpoint.
type UART struct {
	uart *machine.UART
}

// OpenUART configures a machine UART on the given pins.
func OpenUART(uart *machine.UART, baud uint32, tx, rx machine.Pin) (*UART, error) {
	if err := uart.Configure(machine.UARTConfig{BaudRate: baud, TX: tx, RX: rx}); err != nil {
		return nil, err
	}
	return &UART{uart: uart}, nil
}

// BytesAvailable implements Endpoint.
func (u *UART) BytesAvailable() int {
	return u.uart.Buffered()
}

// Read implements io.Reader. machine UART reads return only buffered bytes.
func (u *UART) Read(p []byte) (int, error) {
	return u.uart.Read(p)
}

// Write implements io.Writer.
func (u *UART) Write(p []byte) (int, error) {
	return u.uart.Write(p)
}
