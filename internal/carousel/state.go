package carousel

// State is the rotation controller state.
type State int

const (
	// StateIdle has no list at all.
	StateIdle State = iota
	// StateLoading shows placeholders; the timer is stopped.
	StateLoading
	// StateRotating shows real items with the timer running.
	StateRotating
	// StatePaused shows real items with the timer stopped by an active hover.
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRotating:
		return "rotating"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

func (s State) hasRealList() bool {
	return s == StateRotating || s == StatePaused
}
