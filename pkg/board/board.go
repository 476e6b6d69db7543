// Package board covers the one-shot setup around the relay: identifying
// the machine, sequencing the attached co-processor into run or download
// mode, and printing the startup banner.
package board

// Resetter places the attached co-processor into run or download mode.
type Resetter interface {
	Reset(flash bool) error
}
