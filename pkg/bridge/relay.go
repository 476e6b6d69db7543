// Package bridge relays bytes between a host endpoint and a device
// endpoint, applying line-ending translation and status signaling.
package bridge

import (
	"context"

	"github.com/golang/glog"

	"github.com/scogswell/espbridge/pkg/endpoint"
	fx "github.com/scogswell/espbridge/pkg/framework"
	"github.com/scogswell/espbridge/pkg/indicator"
)

// connectedNotice is written to the host once the connection is up,
// except in flash mode where it would corrupt the programming stream.
var connectedNotice = []byte("Passthrough Connected\r\n")

// Relay moves bytes between the host and device endpoints. All control
// runs on the loop goroutine; chunks never outlive one iteration.
type Relay struct {
	Host   endpoint.Host
	Device endpoint.Endpoint
	Pixel  indicator.Pixel
	Light  indicator.ActivityLight
	Config Config
}

// New creates a Relay with the resolved configuration.
func New(cfg Config, host endpoint.Host, device endpoint.Endpoint, pixel indicator.Pixel, light indicator.ActivityLight) *Relay {
	return &Relay{
		Host:   host,
		Device: device,
		Pixel:  pixel,
		Light:  light,
		Config: cfg,
	}
}

// AddToLoop implements LoopAdder. Priority ordering realizes the servicing
// policy: connection state first, then host traffic, then device traffic,
// so a later activity state overwrites an earlier one within an iteration.
func (r *Relay) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvSense, fx.ControlFunc(r.controlConnection))
	l.AddController(fx.PrLvControl, fx.ControlFunc(r.controlHost))
	l.AddController(fx.PrLvAcuate, fx.ControlFunc(r.controlDevice))
}

// AwaitHost busy-polls until the host endpoint reports a live connection,
// showing the waiting appearance throughout, then announces the bridge.
func (r *Relay) AwaitHost(ctx context.Context) error {
	for !r.Host.Connected() {
		r.setStatus(indicator.StatusWaiting)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	r.setStatus(indicator.StatusIdle)
	if !r.Config.FlashMode {
		if _, err := r.Host.Write(connectedNotice); err != nil {
			return err
		}
	}
	return nil
}

// controlConnection recomputes the connection state each iteration. It only
// drives the indicator: the device endpoint keeps being drained even while
// the host is disconnected, so no device bytes are lost across a host
// reconnect.
func (r *Relay) controlConnection(fx.ControlContext) error {
	if r.Host.Connected() {
		r.setStatus(indicator.StatusIdle)
	} else {
		r.setStatus(indicator.StatusWaiting)
	}
	return nil
}

// controlHost services host-originated bytes: translate or echo per the
// configured policy, then forward to the device.
func (r *Relay) controlHost(fx.ControlContext) error {
	n := r.Host.BytesAvailable()
	if n <= 0 {
		return nil
	}
	r.setStatus(indicator.StatusHostActivity)
	r.Light.Set(true)
	defer r.Light.Set(false)

	chunk := make([]byte, n)
	rn, err := r.Host.Read(chunk)
	if err != nil {
		return err
	}
	if rn == 0 {
		// spurious wake
		return nil
	}
	chunk = chunk[:rn]

	if r.Config.TranslateCR {
		_, err = r.Device.Write(ExpandCR(chunk))
		return err
	}
	if r.Config.LocalEcho {
		if _, err = r.Host.Write(chunk); err != nil {
			return err
		}
	}
	_, err = r.Device.Write(chunk)
	return err
}

// controlDevice forwards device-originated bytes to the host unmodified.
func (r *Relay) controlDevice(fx.ControlContext) error {
	n := r.Device.BytesAvailable()
	if n <= 0 {
		return nil
	}
	r.setStatus(indicator.StatusDeviceActivity)
	r.Light.Set(true)
	defer r.Light.Set(false)

	chunk := make([]byte, n)
	rn, err := r.Device.Read(chunk)
	if err != nil {
		return err
	}
	if rn == 0 {
		return nil
	}
	_, err = r.Host.Write(chunk[:rn])
	return err
}

// setStatus swallows indicator failures: they are cosmetic and must never
// abort the relay.
func (r *Relay) setStatus(s indicator.Status) {
	if err := r.Pixel.SetStatus(s); err != nil {
		glog.V(2).Infof("indicator write failed: %v", err)
	}
}
