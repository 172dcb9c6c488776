// Package wthread provides a reusable lifecycle base for long-running
// workers that each own a dedicated OS thread.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - One worker, one OS thread, no pool
//   - Lock-free flag reads from any goroutine
//   - Cooperative control only: the worker decides when to react
//   - Explicit errors for misuse such as double start or double join
//
// Lifecycle model
//
// A unit of work implements Runnable, a single Loop method. Thread runs
// that method once per start on a goroutine locked to its own OS thread.
// The thread carries two flags, alive and running, held together in one
// atomic state word:
//
//	Idle    alive=false running=false
//	Active  alive=true  running=true
//	Paused  alive=true  running=false
//
// Start and StartCustom move to Active, Pause and Resume toggle between
// Active and Paused, Stop moves to Idle. Loop is expected to keep iterating
// while AliveFlag is true and to skip work while RunningFlag is false; Poll
// implements exactly that with a bounded idle backoff. WaitExit blocks until
// Loop has returned.
//
// Nothing is forced. Stop and Pause only change flags, and the latency
// until Loop notices is up to Loop.
//
// Scheduling
//
// StartCustom switches the new thread to the fixed-priority round-robin
// real-time class before Loop runs. This needs CAP_SYS_NICE or a matching
// RLIMIT_RTPRIO. On Linux, Options.PinToCPU additionally restricts the
// thread to a single CPU.
//
// Threads whose policy or affinity was changed are not handed back to the
// Go runtime after Loop returns; the runtime destroys them instead.
//
// Error handling
//
// Start, StartCustom and WaitExit return typed errors:
//
//   - *ThreadCreationError: the spawn failed or was refused
//   - *ThreadJoinError: there was nothing to join, or the wait gave up
//
// Both name the worker and wrap the cause, so errors.Is works against the
// package sentinels and kernel errnos. The package never logs these errors.
// Panics inside Loop are recovered, logged and passed to Options.OnPanic.
//
// Writing a worker
//
//	type ticker struct {
//		thread *wthread.Thread[*ticker]
//		n      atomic.Int64
//	}
//
//	func (w *ticker) Loop() {
//		wthread.Poll(w.thread, wthread.IdlePolicy{}, func() { w.n.Add(1) })
//	}
//
//	w := &ticker{}
//	w.thread = wthread.New(w)
//	if err := w.thread.Start(); err != nil { ... }
//	...
//	w.thread.Stop()
//	err := w.thread.WaitExit()
package wthread
