package components

// Intent is the single discrete action requested by input for one tick.
// Recomputed every tick, never persisted.
type Intent int

const (
	IntentIdle Intent = iota
	IntentPunch
	IntentKick
	IntentMoveForward
	IntentMoveBackward
)

func (i Intent) String() string {
	switch i {
	case IntentPunch:
		return "punch"
	case IntentKick:
		return "kick"
	case IntentMoveForward:
		return "move_forward"
	case IntentMoveBackward:
		return "move_backward"
	default:
		return "idle"
	}
}
