package factory

import (
	"github.com/automoto/dojoduel/archetypes"
	"github.com/automoto/dojoduel/assets"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns an attack volume anchored at the owner's attachment
// point. The hitbox system keeps it glued to the owner and expires it; the
// owner's CombatData holds the only live reference.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, attack cfg.StateID, attach assets.Offset) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	w, h := hitboxSize(attack)
	ownerObj := components.Object.Get(owner)

	obj := resolv.NewObject(
		ownerObj.X+ownerObj.W+attach.X-w/2,
		ownerObj.Y+ownerObj.H-attach.Y-h/2,
		w, h,
		tags.ResolvHitbox,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox

	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:       owner,
		Attack:      attack,
		TimeLeft:    cfg.Combat.HitboxLifetime,
		OffsetX:     attach.X,
		OffsetY:     attach.Y,
		HitEntities: make(map[*donburi.Entry]bool),
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return hitbox
}

func hitboxSize(attack cfg.StateID) (float64, float64) {
	if attack == cfg.Kicking {
		return cfg.Combat.KickHitboxWidth, cfg.Combat.KickHitboxHeight
	}
	return cfg.Combat.PunchHitboxWidth, cfg.Combat.PunchHitboxHeight
}
