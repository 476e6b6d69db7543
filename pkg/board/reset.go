package board

import "time"

// ControlLines models the DTR and RTS outputs of a serial port.
type ControlLines interface {
	SetDTR(bool) error
	SetRTS(bool) error
}

// DefaultSettleTime is how long reset is held when none is configured.
const DefaultSettleTime = 100 * time.Millisecond

// SerialResetter sequences an ESP-style co-processor through reset using
// the serial control lines, the esptool convention: RTS drives EN and DTR
// drives the IO0 boot strap, both inverted.
type SerialResetter struct {
	Lines      ControlLines
	SettleTime time.Duration
}

// Reset implements Resetter. With flash true the boot strap is held
// through the reset so the chip wakes in download mode.
func (r *SerialResetter) Reset(flash bool) error {
	settle := r.SettleTime
	if settle == 0 {
		settle = DefaultSettleTime
	}
	if err := r.Lines.SetDTR(flash); err != nil {
		return err
	}
	if err := r.Lines.SetRTS(true); err != nil {
		return err
	}
	time.Sleep(settle)
	if err := r.Lines.SetRTS(false); err != nil {
		return err
	}
	time.Sleep(settle / 2)
	return r.Lines.SetDTR(false)
}
