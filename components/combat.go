package components

import "github.com/yohamta/donburi"

// CombatData tracks a fighter's live hitbox. One hitbox per attack: the
// reference is set when the hitbox spawns and cleared when it expires, and
// Spawned stays latched for the rest of the swing so an expired hitbox is
// not re-created while the same action lock is still running.
type CombatData struct {
	ActiveHitbox *donburi.Entry
	Spawned      bool
}

var Combat = donburi.NewComponentType[CombatData]()
