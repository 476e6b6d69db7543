//go:build !baremetal

package board

import "github.com/denisbrodbeck/machineid"

// Identity reports the machine the bridge runs on.
func Identity() string {
	id, err := machineid.ID()
	if err != nil {
		return "unknown machine"
	}
	return id
}
