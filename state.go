package cubesim

// State is the lifecycle state of a Cube. StateIdle is the initial state
// and the only state from which a new operation may start.
type State int

const (
	StateIdle State = iota
	StateRotating
	StateShuffling
	StateSolving
	StateResizing
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRotating:
		return "rotating"
	case StateShuffling:
		return "shuffling"
	case StateSolving:
		return "solving"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}
