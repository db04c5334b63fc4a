package execution

// State represents the current state of an action execution
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// IsFinal returns true when the execution will not change anymore
func (s State) IsFinal() bool {
	return s == StateCompleted || s == StateFailed
}
