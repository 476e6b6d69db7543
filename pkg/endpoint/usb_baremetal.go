//go:build baremetal

package endpoint

import "machine"

// USB adapts the USB CDC interface as the host-facing Endpoint.
type USB struct {
	serial machine.Serialer
}

// OpenUSB wraps the default USB CDC serial.
func OpenUSB() *USB {
	return &USB{serial: machine.Serial}
}

// BytesAvailable implements Endpoint.
func (u *USB) BytesAvailable() int {
	return u.serial.Buffered()
}

// Read implements io.Reader, draining only what is already buffered.
func (u *USB) Read(p []byte) (int, error) {
	var n int
	for n < len(p) && u.serial.Buffered() > 0 {
		b, err := u.serial.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// Write implements io.Writer.
func (u *USB) Write(p []byte) (int, error) {
	return u.serial.Write(p)
}

// Connected implements Host. DTR is asserted while a terminal holds the
// port open.
func (u *USB) Connected() bool {
	return u.serial.DTR()
}
