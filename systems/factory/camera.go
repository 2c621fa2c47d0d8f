package factory

import (
	"github.com/automoto/dojoduel/archetypes"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: dmath.Vec2{
			X: cfg.Arena.WallThickness + cfg.Arena.HalfWidth,
			Y: cfg.Arena.FloorY - cfg.Player.CollisionHeight/2,
		},
	})
}
