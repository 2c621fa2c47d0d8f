package config

// StateID identifies a discrete character state. The state machine in
// systems decides exactly one per character per tick.
type StateID int

const (
	StateNone StateID = iota

	Idle
	Punching
	Kicking
	Running
	RunningBackwards
)

var stateNames = map[StateID]string{
	StateNone:        "none",
	Idle:             "idle",
	Punching:         "punch",
	Kicking:          "kick",
	Running:          "run_forwards",
	RunningBackwards: "walk_backwards",
}

// String returns the state's clip/sheet name, also used in logs.
func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether the state is a committed attack, the only kind
// of state that may hold an action lock.
func (s StateID) IsAttack() bool {
	return s == Punching || s == Kicking
}
