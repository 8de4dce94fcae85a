package entity

// RunState is the lifecycle of a batch runner.
type RunState int32

const (
	// RunStateIdle means the runner was created but not started.
	RunStateIdle RunState = iota
	// RunStateRunning means addresses are being processed.
	RunStateRunning
	// RunStateCompleted means every address was processed.
	RunStateCompleted
	// RunStateInterrupted means the loop exited early after a stop request.
	RunStateInterrupted
)

func (s RunState) String() string {
	switch s {
	case RunStateIdle:
		return "idle"
	case RunStateRunning:
		return "running"
	case RunStateCompleted:
		return "completed"
	case RunStateInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state can no longer change.
func (s RunState) Terminal() bool {
	return s == RunStateCompleted || s == RunStateInterrupted
}
