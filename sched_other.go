//go:build !linux

package wthread

import (
	"errors"
)

func ApplySched(p SchedParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return errors.ErrUnsupported
}

func CurrentSched() (SchedParams, error) {
	return SchedParams{}, errors.ErrUnsupported
}

func currentThreadID() int { return 0 }
