package components

// ActionLock is a countdown that commits a character to a non-interruptible
// action. The zero value is inactive. The lock is armed by the animation
// dispatcher when an attack clip is dispatched and only ever cleared by its
// own expiry; there is no external cancel path.
type ActionLock struct {
	Remaining float64 // seconds
	Active    bool
}

// Arm starts the countdown.
func (l *ActionLock) Arm(seconds float64) {
	l.Remaining = seconds
	l.Active = true
}

// Tick advances the countdown by delta seconds and reports whether the
// character is free to act. A lock that elapses clears itself immediately,
// so the state machine sees the expiry within the same tick it completes
// and can accept a new intent without a one-frame stall.
func (l *ActionLock) Tick(delta float64) bool {
	if !l.Active {
		return true
	}
	l.Remaining -= delta
	if l.Remaining > 0 {
		return false
	}
	l.Remaining = 0
	l.Active = false
	return true
}
