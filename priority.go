package wthread

import (
	"fmt"
)

// Policy is an OS scheduling class.
type Policy int

const (
	// PolicyOther is the default time-sharing class.
	PolicyOther Policy = 0

	// PolicyRoundRobin is the fixed-priority, time-sliced real-time class
	// (SCHED_RR on Linux).
	PolicyRoundRobin Policy = 2
)

// Valid round-robin priorities. Higher runs first.
const (
	MinRoundRobinPriority = 1
	MaxRoundRobinPriority = 99
)

func (p Policy) String() string {
	switch p {
	case PolicyOther:
		return "Other"
	case PolicyRoundRobin:
		return "RoundRobin"
	default:
		return "Unknown"
	}
}

// SchedParams is a scheduling policy plus its static priority.
// For PolicyOther the priority must be 0.
type SchedParams struct {
	Policy   Policy
	Priority int
}

// RoundRobin returns round-robin scheduling parameters with the given priority.
func RoundRobin(priority int) SchedParams {
	return SchedParams{Policy: PolicyRoundRobin, Priority: priority}
}

// ValidatePriority checks priority against the round-robin range.
func ValidatePriority(priority int) error {
	if priority < MinRoundRobinPriority || priority > MaxRoundRobinPriority {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidPriority, priority, MinRoundRobinPriority, MaxRoundRobinPriority)
	}
	return nil
}

func (p SchedParams) Validate() error {
	switch p.Policy {
	case PolicyRoundRobin:
		return ValidatePriority(p.Priority)
	case PolicyOther:
		if p.Priority != 0 {
			return fmt.Errorf("%w: %d for policy %s", ErrInvalidPriority, p.Priority, p.Policy)
		}
		return nil
	default:
		return fmt.Errorf("wthread: unsupported policy %d", int(p.Policy))
	}
}

func (p SchedParams) String() string {
	return fmt.Sprintf("%s/%d", p.Policy, p.Priority)
}
