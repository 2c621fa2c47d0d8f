package systems

import (
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the midpoint of all characters.
// Cosmetic framing only: it reads positions, never writes them.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var sum float64
	var count int
	components.State.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry)
		sum += obj.X + obj.W/2
		count++
	})
	if count == 0 {
		return
	}

	target := sum / float64(count)
	delta := TickDelta(e)
	t := cfg.Camera.Smoothing * delta
	if t > 1 {
		t = 1
	}
	camera.Position.X += (target - camera.Position.X) * t
	camera.Position.Y = cfg.Arena.FloorY - cfg.Player.CollisionHeight/2
}
