//go:build !baremetal

package endpoint

import (
	"flag"
	"time"

	"go.bug.st/serial"
)

// Config defines serial port locations and tuning.
type Config struct {
	HostPath    string
	DevicePath  string
	BaudRate    int
	ReadTimeout time.Duration
}

var defaultConfig = Config{
	BaudRate:    115200,
	ReadTimeout: 100 * time.Millisecond,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.HostPath, "host-port", defaultConfig.HostPath, "Serial port facing the operator terminal.")
	flag.StringVar(&defaultConfig.DevicePath, "device-port", defaultConfig.DevicePath, "Serial port facing the bridged device.")
	flag.IntVar(&defaultConfig.BaudRate, "baud", defaultConfig.BaudRate, "Baud rate for both ports.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Read timeout on both ports.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// OpenDevice opens the device-facing serial port.
func (c *Config) OpenDevice() (*Port, error) {
	return open(c.DevicePath, c)
}

// OpenHost opens the host-facing serial port.
func (c *Config) OpenHost() (*HostPort, error) {
	port, err := open(c.HostPath, c)
	if err != nil {
		return nil, err
	}
	return &HostPort{Port: port}, nil
}

// Port adapts a serial port to the Endpoint shape. Incoming bytes are
// staged in an internal buffer so BytesAvailable can answer without
// consuming data.
type Port struct {
	port serial.Port
	buf  []byte
	err  error
	rd   [512]byte
}

func open(path string, c *Config) (*Port, error) {
	if path == "" {
		return nil, ErrNoPort
	}
	port, err := serial.Open(path, &serial.Mode{BaudRate: c.BaudRate})
	if err != nil {
		return nil, err
	}
	if err = port.SetReadTimeout(c.ReadTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return &Port{port: port}, nil
}

// BytesAvailable implements Endpoint. A pending transport error counts as
// readable so it surfaces on the next Read instead of vanishing.
func (p *Port) BytesAvailable() int {
	if len(p.buf) == 0 && p.err == nil {
		p.fill()
	}
	if n := len(p.buf); n > 0 {
		return n
	}
	if p.err != nil {
		return 1
	}
	return 0
}

// fill performs one timed read. A timed-out read reports zero bytes with
// no error, which leaves the stage untouched.
func (p *Port) fill() {
	n, err := p.port.Read(p.rd[:])
	if err != nil {
		p.err = err
		return
	}
	p.buf = append(p.buf, p.rd[:n]...)
}

// Read implements io.Reader, serving staged bytes first.
func (p *Port) Read(b []byte) (int, error) {
	if len(p.buf) == 0 && p.err == nil {
		p.fill()
	}
	if len(p.buf) == 0 && p.err != nil {
		err := p.err
		p.err = nil
		return 0, err
	}
	n := copy(b, p.buf)
	p.buf = p.buf[:copy(p.buf, p.buf[n:])]
	return n, nil
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// SetDTR drives the DTR control line.
func (p *Port) SetDTR(v bool) error {
	return p.port.SetDTR(v)
}

// SetRTS drives the RTS control line.
func (p *Port) SetRTS(v bool) error {
	return p.port.SetRTS(v)
}

// Close closes the underlying port.
func (p *Port) Close() error {
	return p.port.Close()
}

// HostPort is a Port with a connection signal derived from modem status.
type HostPort struct {
	*Port
}

// Connected implements Host. DSR and DCD follow the remote terminal's DTR.
// Transports without modem lines report connected.
func (p *HostPort) Connected() bool {
	bits, err := p.port.GetModemStatusBits()
	if err != nil {
		return true
	}
	return bits.DSR || bits.DCD
}
