package wthread_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	wt "github.com/Andrej220/go-utils/wthread"
)

var fastIdle = wt.IdlePolicy{Initial: 100 * time.Microsecond, Max: time.Millisecond}

// counter increments n once per iteration while running.
type counter struct {
	thread *wt.Thread[*counter]
	n      atomic.Int64
	step   time.Duration
}

func (c *counter) Loop() {
	wt.Poll(c.thread, fastIdle, func() {
		c.n.Add(1)
		if c.step > 0 {
			time.Sleep(c.step)
		}
	})
}

func (c *counter) ThreadName() string { return "counter" }

func newCounter(t *testing.T, opts wt.Options) *counter {
	t.Helper()

	c := &counter{step: 100 * time.Microsecond}
	c.thread = wt.NewWithOptions(c, opts)
	return c
}

// stopAndJoin is registered with t.Cleanup so a failing test does not
// leave a worker spinning.
func stopAndJoin[T wt.Runnable](th *wt.Thread[T]) {
	th.Stop()
	_ = th.WaitExit()
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}

// joinWithin fails the test when WaitExit does not return in time.
func joinWithin[T wt.Runnable](t *testing.T, th *wt.Thread[T], timeout time.Duration) error {
	t.Helper()

	errCh := make(chan error, 1)
	go func() { errCh <- th.WaitExit() }()
	select {
	case err := <-errCh:
		return err
	case <-time.After(timeout):
		t.Fatalf("WaitExit did not return within %s", timeout)
		return nil
	}
}
