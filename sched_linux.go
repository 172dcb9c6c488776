//go:build linux

package wthread

import (
	"golang.org/x/sys/unix"
)

// ApplySched sets the scheduling policy of the calling OS thread.
// The caller should hold runtime.LockOSThread, otherwise the change lands
// on whatever thread the goroutine happens to run on.
//
// Real-time policies need CAP_SYS_NICE or a matching RLIMIT_RTPRIO,
// without it the kernel returns EPERM.
func ApplySched(p SchedParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	attr := unix.SchedAttr{
		Policy:   linuxPolicy(p.Policy),
		Priority: uint32(p.Priority),
	}
	return unix.SchedSetAttr(0, &attr, 0)
}

// CurrentSched reads the scheduling policy of the calling OS thread.
func CurrentSched() (SchedParams, error) {
	attr, err := unix.SchedGetAttr(0, 0)
	if err != nil {
		return SchedParams{}, err
	}
	return SchedParams{Policy: fromLinuxPolicy(attr.Policy), Priority: int(attr.Priority)}, nil
}

func linuxPolicy(p Policy) uint32 {
	if p == PolicyRoundRobin {
		return unix.SCHED_RR
	}
	return unix.SCHED_NORMAL
}

func fromLinuxPolicy(v uint32) Policy {
	switch v {
	case unix.SCHED_RR:
		return PolicyRoundRobin
	case unix.SCHED_NORMAL:
		return PolicyOther
	default:
		return Policy(v)
	}
}

func currentThreadID() int {
	return unix.Gettid()
}
