package wthread

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyStarted is returned by Start and StartCustom when the
	// thread has a live or unjoined spawn.
	ErrAlreadyStarted = errors.New("wthread: thread already started")

	// ErrNotStarted is returned by WaitExit when there is nothing to join:
	// the thread was never started, its start failed, or it was joined.
	ErrNotStarted = errors.New("wthread: thread not started")

	// ErrAlreadyJoining is returned by WaitExit when another caller
	// is already waiting on the same spawn.
	ErrAlreadyJoining = errors.New("wthread: thread is already being joined")

	// ErrInvalidPriority is returned when a round-robin priority is out of range.
	ErrInvalidPriority = errors.New("wthread: invalid priority")

	// ErrInvalidCPU is returned when a CPU index cannot be pinned to.
	ErrInvalidCPU = errors.New("wthread: invalid cpu")
)

// ThreadCreationError reports a failed Start or StartCustom.
//
// Name identifies the worker. Err is the cause, such as ErrAlreadyStarted,
// ErrInvalidPriority or the errno returned by the kernel.
type ThreadCreationError struct {
	Name string
	Err  error
}

func (e *ThreadCreationError) Error() string {
	return fmt.Sprintf("wthread: cannot create thread %s: %v", e.Name, e.Err)
}

func (e *ThreadCreationError) Unwrap() error { return e.Err }

// ThreadJoinError reports a failed WaitExit or WaitExitContext.
type ThreadJoinError struct {
	Name string
	Err  error
}

func (e *ThreadJoinError) Error() string {
	return fmt.Sprintf("wthread: wait thread end error %s: %v", e.Name, e.Err)
}

func (e *ThreadJoinError) Unwrap() error { return e.Err }

// PanicError carries a value recovered from a panicking Loop.
type PanicError struct {
	Name  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("wthread: thread %s loop panicked: %v", e.Name, e.Value)
}

// Unwrap returns Value when it is an error, nil otherwise.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
