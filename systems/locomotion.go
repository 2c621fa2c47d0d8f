package systems

import (
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion converts each character's decided state into a
// displacement along the movement axis, resolves it against the arena
// walls and clamps the result to the arena bounds. Pure consumer of the
// state machine's output; runs after UpdateAnimations.
func UpdateLocomotion(e *ecs.ECS) {
	delta := TickDelta(e)

	components.State.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		state := components.State.Get(entry)
		obj := components.Object.Get(entry)

		dx := Displacement(state.CurrentState, delta)
		if dx != 0 {
			if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
				if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
					dx = check.ContactWithObject(solids[0]).X()
				}
			}
			obj.X += dx
		}

		obj.X = clampToArena(obj.X, obj.W)
		obj.Update()
	})
}

// Displacement returns the axis displacement for one tick spent in state.
// Retreating is slower than advancing on purpose.
func Displacement(s cfg.StateID, delta float64) float64 {
	switch s {
	case cfg.Running:
		return cfg.Player.ForwardSpeed * delta
	case cfg.RunningBackwards:
		return -cfg.Player.BackwardSpeed * delta
	default:
		return 0
	}
}

// ArenaCenter returns the movement-axis origin in resolv space
// coordinates. The playable interval is symmetric around it.
func ArenaCenter() float64 {
	return cfg.Arena.WallThickness + cfg.Arena.HalfWidth
}

// AxisPosition returns an object's center offset from the arena origin.
func AxisPosition(obj *resolv.Object) float64 {
	return obj.X + obj.W/2 - ArenaCenter()
}

// clampToArena keeps an object of width w inside the playable interval.
// Idempotent: a position already inside bounds is returned unchanged.
func clampToArena(x, w float64) float64 {
	min := cfg.Arena.WallThickness
	max := cfg.Arena.WallThickness + 2*cfg.Arena.HalfWidth - w
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
