package factory

import (
	"github.com/automoto/dojoduel/archetypes"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the controllable fighter at axis position x. The
// entity is playable immediately; its rig resolves whenever the asset
// library finishes decoding.
func CreatePlayer(ecs *ecs.ECS, x float64, rigKey string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	attachFighterBody(ecs, player, x)
	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
	})
	components.Rig.SetValue(player, components.RigRef{Key: rigKey})

	return player
}

// CreateDummy spawns a non-controllable fighter used as a target. It runs
// the same state and animation pipeline but never receives intents, so it
// idles forever.
func CreateDummy(ecs *ecs.ECS, x float64, rigKey string) *donburi.Entry {
	dummy := archetypes.Dummy.Spawn(ecs)

	attachFighterBody(ecs, dummy, x)
	components.Rig.SetValue(dummy, components.RigRef{Key: rigKey})

	return dummy
}

// attachFighterBody gives a fighter its collision object and initial state.
// Fresh fighters idle; PreviousState starts at StateNone so the animation
// dispatcher sees the spawn itself as a transition and plays the idle clip.
func attachFighterBody(ecs *ecs.ECS, entry *donburi.Entry, x float64) {
	w := cfg.Player.CollisionWidth
	h := cfg.Player.CollisionHeight

	spaceX := cfg.Arena.WallThickness + cfg.Arena.HalfWidth + x - w/2
	obj := resolv.NewObject(spaceX, cfg.Arena.FloorY-h, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.State.SetValue(entry, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Combat.SetValue(entry, components.CombatData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
