package wthread

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	lg "github.com/Andrej220/go-utils/zlog"
)

// Runnable is a unit of work driven by a Thread. Loop is called once per
// start, on the worker's own OS thread, and must keep iterating until the
// thread's AliveFlag turns false. Poll implements that contract.
type Runnable interface {
	Loop()
}

// LoopFunc adapts a plain function to Runnable.
type LoopFunc func()

func (f LoopFunc) Loop() { f() }

// Namer lets a Runnable choose the name used in logs and errors.
type Namer interface {
	ThreadName() string
}

// handle is one spawn of a Thread.
type handle struct {
	done    chan struct{}
	tid     int
	joining bool
}

// Thread runs a Runnable on a dedicated OS thread and exposes
// start/stop/pause/resume/join control over it.
//
// The alive and running flags live in a single atomic state word and may be
// read or changed from any goroutine. Start, StartCustom and the WaitExit
// family are serialized by an internal mutex that is never held while Loop
// runs.
type Thread[T Runnable] struct {
	loop  T
	name  string
	opts  Options
	state stateWord

	mu sync.Mutex
	h  *handle
}

// New returns an idle Thread for loop with default options.
func New[T Runnable](loop T) *Thread[T] {
	return NewWithOptions(loop, Options{})
}

func NewWithOptions[T Runnable](loop T, opts Options) *Thread[T] {
	opts.FillDefaults()
	return &Thread[T]{
		loop: loop,
		opts: opts,
		name: threadName(loop, opts.Name),
	}
}

func threadName[T Runnable](loop T, name string) string {
	if name != "" {
		return name
	}
	if n, ok := any(loop).(Namer); ok {
		if s := n.ThreadName(); s != "" {
			return s
		}
	}
	return fmt.Sprintf("%T", loop)
}

// Start sets the thread Active and spawns Loop on a new OS thread.
//
// Start fails with a *ThreadCreationError wrapping ErrAlreadyStarted while a
// previous spawn has not been joined with WaitExit, and leaves the state
// untouched in that case. Any other failure leaves the state Active with no
// spawn recorded; WaitExit then reports ErrNotStarted.
func (t *Thread[T]) Start() error {
	return t.spawn(nil)
}

// StartCustom is Start with the new OS thread switched to the round-robin
// real-time policy at priority before Loop runs. It needs CAP_SYS_NICE or a
// sufficient RLIMIT_RTPRIO; a refusal is reported as a *ThreadCreationError.
func (t *Thread[T]) StartCustom(priority int) error {
	sp := RoundRobin(priority)
	return t.spawn(&sp)
}

func (t *Thread[T]) spawn(sched *SchedParams) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.h != nil {
		return t.startFailed(ErrAlreadyStarted)
	}
	t.state.store(StateActive)

	if sched != nil {
		if err := sched.Validate(); err != nil {
			return t.startFailed(err)
		}
	}

	h := &handle{done: make(chan struct{})}
	ready := make(chan error, 1)
	go t.run(h, sched, ready)

	if err := <-ready; err != nil {
		<-h.done
		return t.startFailed(err)
	}
	t.h = h
	return nil
}

func (t *Thread[T]) startFailed(err error) error {
	t.opts.Metrics.IncStartFailed()
	return &ThreadCreationError{Name: t.name, Err: err}
}

// run is the body of the spawned goroutine. Setup errors are sent on ready
// before Loop is entered.
func (t *Thread[T]) run(h *handle, sched *SchedParams, ready chan<- error) {
	defer close(h.done)

	runtime.LockOSThread()

	// A thread with modified affinity or policy must not go back to the
	// runtime; exiting while locked makes the runtime destroy it.
	tainted := false
	if t.opts.PinToCPU {
		tainted = true
		if err := PinToCPU(t.opts.CPU); err != nil {
			ready <- err
			return
		}
	}
	if sched != nil {
		tainted = true
		if err := ApplySched(*sched); err != nil {
			ready <- err
			return
		}
	}
	h.tid = currentThreadID()

	// Reported from the worker so it always precedes the exit report.
	logger := lg.FromContext(t.opts.Ctx).With(lg.String("thread", t.name))
	t.opts.Metrics.IncStarted()
	if sched != nil {
		logger.Info("thread started", lg.Int("tid", h.tid), lg.String("sched", sched.String()))
	} else {
		logger.Info("thread started", lg.Int("tid", h.tid))
	}
	ready <- nil

	defer func() {
		if r := recover(); r != nil {
			t.opts.Metrics.IncPanicked()
			logger.Error("thread loop panicked", lg.Any("panic", r))
			t.reportPanic(&PanicError{Name: t.name, Value: r})
		}
		t.state.store(StateIdle)
		t.opts.Metrics.IncExited()
		logger.Info("thread exited", lg.Int("tid", h.tid))
		if !tainted {
			runtime.UnlockOSThread()
		}
	}()

	t.loop.Loop()
}

// Stop clears the alive flag. It does not wait and does not interrupt Loop.
func (t *Thread[T]) Stop() {
	t.state.store(StateIdle)
}

// Pause clears the running flag of an Active thread.
func (t *Thread[T]) Pause() {
	t.state.transition(StateActive, StatePaused)
}

// Resume sets the running flag of a Paused thread. A stopped thread
// stays stopped.
func (t *Thread[T]) Resume() {
	t.state.transition(StatePaused, StateActive)
}

// WaitExit blocks until Loop of the current spawn has returned. After it
// succeeds the thread may be started again.
func (t *Thread[T]) WaitExit() error {
	return t.WaitExitContext(context.Background())
}

// WaitExitContext is WaitExit bounded by ctx. When ctx ends first the spawn
// stays joinable and the returned *ThreadJoinError wraps ctx.Err().
func (t *Thread[T]) WaitExitContext(ctx context.Context) error {
	t.mu.Lock()
	h := t.h
	switch {
	case h == nil:
		t.mu.Unlock()
		return &ThreadJoinError{Name: t.name, Err: ErrNotStarted}
	case h.joining:
		t.mu.Unlock()
		return &ThreadJoinError{Name: t.name, Err: ErrAlreadyJoining}
	}
	h.joining = true
	t.mu.Unlock()

	select {
	case <-h.done:
		t.mu.Lock()
		t.h = nil
		t.mu.Unlock()
		return nil
	case <-ctx.Done():
		t.mu.Lock()
		h.joining = false
		t.mu.Unlock()
		return &ThreadJoinError{Name: t.name, Err: ctx.Err()}
	}
}

func (t *Thread[T]) AliveFlag() bool   { return t.state.load().Alive() }
func (t *Thread[T]) RunningFlag() bool { return t.state.load().Running() }
func (t *Thread[T]) State() State      { return t.state.load() }

func (t *Thread[T]) Name() string { return t.name }

// Worker returns the Runnable this thread drives.
func (t *Thread[T]) Worker() T { return t.loop }

// ThreadID returns the OS thread id of the unjoined spawn, or 0.
func (t *Thread[T]) ThreadID() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.h == nil {
		return 0
	}
	return t.h.tid
}
