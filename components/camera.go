package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData frames the fight. Strictly read-only over character state:
// it looks at positions, never mutates them.
type CameraData struct {
	Position math.Vec2 // world units
}

var Camera = donburi.NewComponentType[CameraData]()
