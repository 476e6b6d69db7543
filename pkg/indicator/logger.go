//go:build !baremetal

package indicator

import "github.com/golang/glog"

// StateLogger reports status transitions through the log. It stands in for
// the neopixel on builds without one.
type StateLogger struct {
	last Status
	set  bool
}

// NewStateLogger creates a StateLogger.
func NewStateLogger() *StateLogger {
	return &StateLogger{}
}

// SetStatus implements Pixel, logging only on transitions.
func (l *StateLogger) SetStatus(s Status) error {
	if l.set && s == l.last {
		return nil
	}
	l.last, l.set = s, true
	glog.V(1).Infof("status: %v", s)
	return nil
}
