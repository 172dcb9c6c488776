package wthread

import (
	"sync/atomic"
)

// State is the lifecycle state of a Thread. It replaces the separate
// alive and running flags with one word, so alive=false, running=true
// cannot be observed.
//
//	StateIdle   -> StateActive  [Start, StartCustom]
//	StateActive -> StatePaused  [Pause]
//	StatePaused -> StateActive  [Resume]
//	any         -> StateIdle    [Stop, Loop returned]
type State int32

const (
	StateIdle State = iota
	StateActive
	StatePaused
)

// Alive reports whether Loop should keep iterating.
func (s State) Alive() bool {
	return s == StateActive || s == StatePaused
}

// Running reports whether Loop should be doing work.
func (s State) Running() bool {
	return s == StateActive
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

type stateWord struct {
	v atomic.Int32
}

func (w *stateWord) load() State { return State(w.v.Load()) }

func (w *stateWord) store(s State) { w.v.Store(int32(s)) }

func (w *stateWord) transition(from, to State) bool {
	return w.v.CompareAndSwap(int32(from), int32(to))
}
