package wthread

import (
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
)

const (
	defaultIdleInitial = time.Millisecond
	defaultIdleMax     = 10 * time.Millisecond
)

// Flags is the read side of a Thread, as seen by its Loop.
type Flags interface {
	AliveFlag() bool
	RunningFlag() bool
}

// IdlePolicy describes how a paused loop sleeps between polls.
// Zero values are treated as "use defaults".
type IdlePolicy struct {
	// Initial is the first sleep after a pause is observed.
	Initial time.Duration

	// Max caps a single sleep, and with it the latency of Resume and Stop.
	Max time.Duration
}

// DefaultIdlePolicy returns the policy Poll uses for zero fields.
func DefaultIdlePolicy() *IdlePolicy {
	ip := IdlePolicy{
		Initial: defaultIdleInitial,
		Max:     defaultIdleMax,
	}
	return &ip
}

func (ip *IdlePolicy) fillDefaults() {
	if ip.Initial <= 0 {
		ip.Initial = defaultIdleInitial
	}
	if ip.Max <= 0 {
		ip.Max = defaultIdleMax
	}
	if ip.Max < ip.Initial {
		ip.Max = ip.Initial
	}
}

// Poll runs the standard loop body: while f is alive, call step if f is
// running, otherwise sleep with exponential backoff. The backoff restarts
// each time a pause begins. Poll returns once f is no longer alive; a step
// in progress is never interrupted.
//
// A typical Loop is a single call:
//
//	func (w *worker) Loop() {
//		wthread.Poll(w.thread, wthread.IdlePolicy{}, w.step)
//	}
func Poll(f Flags, idle IdlePolicy, step func()) {
	idle.fillDefaults()

	bo := boff.New(idle.Initial, idle.Max, time.Now().UnixNano())
	paused := false
	for f.AliveFlag() {
		if !f.RunningFlag() {
			if !paused {
				bo = boff.New(idle.Initial, idle.Max, time.Now().UnixNano())
				paused = true
			}
			delay := bo.Next()
			if delay > idle.Max {
				delay = idle.Max
			}
			time.Sleep(delay)
			continue
		}
		paused = false
		step()
	}
}
