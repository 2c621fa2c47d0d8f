package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Dummy  = donburi.NewTag().SetName("Dummy")
	Wall   = donburi.NewTag().SetName("Wall")
	Hitbox = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvHitbox    = "hitbox"
)
