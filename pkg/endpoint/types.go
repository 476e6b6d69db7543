// Package endpoint abstracts the byte-stream channels bridged by the relay.
package endpoint

import (
	"errors"
	"io"
)

// Endpoint is a full-duplex byte stream polled by the relay. Read returns
// immediately with whatever is buffered, bounded only by the read timeout
// configured on the underlying transport.
type Endpoint interface {
	io.ReadWriter
	// BytesAvailable reports how many bytes a Read can return right away.
	BytesAvailable() int
}

// Host is an Endpoint with a live connection signal.
type Host interface {
	Endpoint
	Connected() bool
}

// ErrNoPort indicates no serial port path was configured.
var ErrNoPort = errors.New("no serial port configured")
