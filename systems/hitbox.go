package systems

import (
	"github.com/automoto/dojoduel/assets"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/logger"
	"github.com/automoto/dojoduel/systems/factory"
	"github.com/automoto/dojoduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateHitboxes spawns one short-lived hitbox per attack at the
// attacker's hand or foot attachment point, keeps it glued to its owner,
// records overlaps against other characters, and expires it by countdown.
func UpdateHitboxes(e *ecs.ECS) {
	spawnAttackHitboxes(e)
	advanceHitboxes(e)
}

func spawnAttackHitboxes(e *ecs.ECS) {
	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		combat := components.Combat.Get(entry)

		// The lock spans the whole swing; its release re-opens the spawn
		// latch for the next attack.
		if !state.CurrentState.IsAttack() || !state.Lock.Active {
			combat.Spawned = false
			return
		}
		if combat.Spawned || combat.ActiveHitbox != nil {
			return
		}
		rigRef := components.Rig.Get(entry)
		if !rigRef.Resolved {
			return
		}

		combat.ActiveHitbox = factory.CreateHitbox(e, entry, state.CurrentState, attachFor(rigRef.AttachPoints, state.CurrentState))
		combat.Spawned = true
	})
}

// attachFor picks the attachment point an attack emanates from.
func attachFor(ap assets.AttachPoints, attack cfg.StateID) assets.Offset {
	if attack == cfg.Kicking {
		return ap.Foot
	}
	return ap.Hand
}

func advanceHitboxes(e *ecs.ECS) {
	delta := TickDelta(e)

	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		hb := components.Hitbox.Get(entry)
		obj := components.Object.Get(entry)

		hb.TimeLeft -= delta
		if hb.TimeLeft <= 0 {
			releaseHitbox(e, entry, hb)
			return
		}

		followOwner(hb, obj.Object)
		obj.Update()

		if check := obj.Check(0, 0, tags.ResolvCharacter); check != nil {
			for _, target := range check.ObjectsByTags(tags.ResolvCharacter) {
				targetEntry, ok := target.Data.(*donburi.Entry)
				if !ok || targetEntry == hb.Owner || hb.HitEntities[targetEntry] {
					continue
				}
				hb.HitEntities[targetEntry] = true
				QueueSFX(e, cfg.SoundHit)
				logger.Debug("hit landed",
					zap.Stringer("attack", hb.Attack),
					zap.Any("target", targetEntry.Entity()),
				)
			}
		}
	})
}

// followOwner re-anchors the hitbox to its owner's attachment point,
// mirrored by the owner's facing.
func followOwner(hb *components.HitboxData, obj *resolv.Object) {
	ownerObj := components.Object.Get(hb.Owner)
	facing := cfg.DirectionRight
	if hb.Owner.HasComponent(components.Player) {
		facing = components.Player.Get(hb.Owner).Facing
	}

	if facing >= 0 {
		obj.X = ownerObj.X + ownerObj.W + hb.OffsetX - obj.W/2
	} else {
		obj.X = ownerObj.X - hb.OffsetX - obj.W/2
	}
	obj.Y = ownerObj.Y + ownerObj.H - hb.OffsetY - obj.H/2
}

func releaseHitbox(e *ecs.ECS, entry *donburi.Entry, hb *components.HitboxData) {
	if hb.Owner.Valid() && hb.Owner.HasComponent(components.Combat) {
		components.Combat.Get(hb.Owner).ActiveHitbox = nil
	}
	if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}
