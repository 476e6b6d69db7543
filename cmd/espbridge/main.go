//go:build !baremetal

package main

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/scogswell/espbridge/pkg/board"
	"github.com/scogswell/espbridge/pkg/bridge"
	"github.com/scogswell/espbridge/pkg/endpoint"
	fx "github.com/scogswell/espbridge/pkg/framework"
	"github.com/scogswell/espbridge/pkg/indicator"
)

func init() {
	bridge.SetupFlags()
	endpoint.SetupFlags()
}

func main() {
	flag.Parse()

	cfg := bridge.NewConfig()
	ports := endpoint.NewConfig()

	host, err := ports.OpenHost()
	if err != nil {
		glog.Exitf("cannot open host endpoint %q: %v (pass -host-port with the terminal-facing serial device)", ports.HostPath, err)
	}
	device, err := ports.OpenDevice()
	if err != nil {
		glog.Exitf("cannot open device endpoint %q: %v", ports.DevicePath, err)
	}

	board.Banner(os.Stdout, *cfg)
	resetter := &board.SerialResetter{Lines: device}
	if err = resetter.Reset(cfg.FlashMode); err != nil {
		glog.Warningf("co-processor reset not performed: %v", err)
	}

	relay := bridge.New(*cfg, host, device, indicator.NewStateLogger(), indicator.NopLight{})
	if err = relay.AwaitHost(context.Background()); err != nil {
		glog.Exitf("host connection failed: %v", err)
	}
	fx.NewLoop().Add(relay).RunOrFail()
}
