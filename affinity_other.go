//go:build !linux

package wthread

import (
	"errors"
	"fmt"
)

func PinToCPU(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}
	return errors.ErrUnsupported
}
