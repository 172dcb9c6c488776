//go:build linux

package wthread

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PinToCPU restricts the calling OS thread to a single CPU.
// Like ApplySched it should run under runtime.LockOSThread.
func PinToCPU(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	// Set ignores indexes past the end of the set.
	if mask.Count() == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}
	return unix.SchedSetaffinity(0, &mask)
}
