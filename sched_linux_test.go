//go:build linux

package wthread_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	wt "github.com/Andrej220/go-utils/wthread"
)

// schedProbe records the policy its thread runs under.
type schedProbe struct {
	thread *wt.Thread[*schedProbe]
	got    chan wt.SchedParams
}

func (p *schedProbe) Loop() {
	sp, err := wt.CurrentSched()
	if err != nil {
		sp = wt.SchedParams{Policy: wt.Policy(-1)}
	}
	p.got <- sp
	wt.Poll(p.thread, fastIdle, func() { time.Sleep(time.Millisecond) })
}

func TestStartCustomRoundRobin(t *testing.T) {
	p := &schedProbe{got: make(chan wt.SchedParams, 1)}
	p.thread = wt.New(p)

	err := p.thread.StartCustom(10)
	if errors.Is(err, unix.EPERM) || errors.Is(err, unix.ENOSYS) {
		t.Skipf("real-time scheduling not permitted: %v", err)
	}
	require.NoError(t, err)
	t.Cleanup(func() { stopAndJoin(p.thread) })

	select {
	case sp := <-p.got:
		assert.Equal(t, wt.RoundRobin(10), sp)
	case <-time.After(time.Second):
		t.Fatal("loop did not start")
	}
	assert.NotZero(t, p.thread.ThreadID())
}

func TestStartUsesDefaultPolicy(t *testing.T) {
	p := &schedProbe{got: make(chan wt.SchedParams, 1)}
	p.thread = wt.New(p)

	require.NoError(t, p.thread.Start())
	t.Cleanup(func() { stopAndJoin(p.thread) })

	select {
	case sp := <-p.got:
		assert.Equal(t, wt.PolicyOther, sp.Policy)
	case <-time.After(time.Second):
		t.Fatal("loop did not start")
	}
}

func TestThreadIDIsWorkerThread(t *testing.T) {
	tids := make(chan int, 1)
	var th *wt.Thread[wt.LoopFunc]
	th = wt.New(wt.LoopFunc(func() {
		tids <- unix.Gettid()
		wt.Poll(th, fastIdle, func() { time.Sleep(time.Millisecond) })
	}))
	require.NoError(t, th.Start())
	t.Cleanup(func() { stopAndJoin(th) })

	assert.Equal(t, <-tids, th.ThreadID())
}

func TestApplySchedRejectsInvalid(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	assert.ErrorIs(t, wt.ApplySched(wt.RoundRobin(0)), wt.ErrInvalidPriority)
}
