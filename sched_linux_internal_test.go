//go:build linux

package wthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestLinuxPolicyMapping(t *testing.T) {
	assert.EqualValues(t, unix.SCHED_NORMAL, linuxPolicy(PolicyOther))
	assert.EqualValues(t, unix.SCHED_RR, linuxPolicy(PolicyRoundRobin))

	assert.Equal(t, PolicyOther, fromLinuxPolicy(unix.SCHED_NORMAL))
	assert.Equal(t, PolicyRoundRobin, fromLinuxPolicy(unix.SCHED_RR))
	assert.Equal(t, Policy(unix.SCHED_FIFO), fromLinuxPolicy(unix.SCHED_FIFO))

	for _, p := range []Policy{PolicyOther, PolicyRoundRobin} {
		assert.Equal(t, p, fromLinuxPolicy(linuxPolicy(p)), p.String())
	}
}
