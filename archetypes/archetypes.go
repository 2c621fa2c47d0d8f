package archetypes

import (
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.State,
		components.Combat,
		components.Rig,
		components.Animation,
	)
	Dummy = newArchetype(
		tags.Dummy,
		components.Object,
		components.State,
		components.Combat,
		components.Rig,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
}
