//go:build baremetal

package board

import "machine"

// Identity reports the board the bridge runs on.
func Identity() string {
	return machine.Device
}
