package factory

import (
	"math"

	"github.com/automoto/dojoduel/archetypes"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the collision space and the static geometry of the
// fighting strip: a floor plus a wall at each end of the playable interval.
func CreateArena(ecs *ecs.ECS) {
	width := cfg.Arena.WallThickness*2 + cfg.Arena.HalfWidth*2
	height := cfg.Arena.Height

	CreateSpace(ecs, int(math.Ceil(width)), int(math.Ceil(height)), 1, 1)

	// Left wall, right wall, floor. Positions are in space coordinates,
	// which start at the outer face of the left wall.
	CreateWall(ecs, 0, 0, cfg.Arena.WallThickness, height)
	CreateWall(ecs, width-cfg.Arena.WallThickness, 0, cfg.Arena.WallThickness, height)
	CreateWall(ecs, 0, cfg.Arena.FloorY, width, height-cfg.Arena.FloorY)
}

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
