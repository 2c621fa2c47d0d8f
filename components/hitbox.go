package components

import (
	"github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
)

// HitboxData is a short-lived attack volume attached to an attacker's hand
// or foot. It expires by countdown and remembers what it already hit so a
// single swing cannot hit the same target twice.
type HitboxData struct {
	Owner       *donburi.Entry
	Attack      config.StateID // Punching or Kicking
	TimeLeft    float64        // seconds
	OffsetX     float64        // attachment offset from the owner, facing-relative
	OffsetY     float64
	HitEntities map[*donburi.Entry]bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
