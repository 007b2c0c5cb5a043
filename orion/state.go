package orion

//go:generate go tool stringer -type=State -trimprefix=State -output=state_string.go

type State uint8

const (
	// StateIdle waits for window events.
	StateIdle State = iota

	// StateDirty redraws in the next iteration.
	StateDirty

	// StateShuttingDown leaves the loop.
	StateShuttingDown
)
