package systems

import (
	"image"
	"image/color"

	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	backgroundColor = color.RGBA{24, 20, 28, 255}
	floorColor      = color.RGBA{70, 60, 80, 255}
	wallColor       = color.RGBA{50, 44, 60, 255}
	hitboxColor     = color.RGBA{220, 60, 60, 160}
)

// DrawWorld renders the arena and both fighters. Rendering is a pure
// consumer: it reads animation and collision state and never writes back.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	drawArena(e, screen, camera)
	drawFighters(e, screen, camera)

	if cfg.Debug.DrawHitboxes {
		drawHitboxes(e, screen, camera)
	}
}

// worldToScreen maps a point in space coordinates to screen pixels, with
// the camera position at the screen center.
func worldToScreen(camera *components.CameraData, screen *ebiten.Image, x, y float64) (float32, float32) {
	ppu := cfg.Render.PixelsPerUnit
	sx := (x-camera.Position.X)*ppu + float64(screen.Bounds().Dx())/2
	sy := (y-camera.Position.Y)*ppu + float64(screen.Bounds().Dy())/2
	return float32(sx), float32(sy)
}

func drawArena(e *ecs.ECS, screen *ebiten.Image, camera *components.CameraData) {
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		x, y := worldToScreen(camera, screen, obj.X, obj.Y)
		w := float32(obj.W * cfg.Render.PixelsPerUnit)
		h := float32(obj.H * cfg.Render.PixelsPerUnit)

		c := wallColor
		// The floor slab spans the full arena width; tint it differently
		// so the ground line reads.
		if obj.W > cfg.Arena.WallThickness*2 {
			c = floorColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	})
}

func drawFighters(e *ecs.ECS, screen *ebiten.Image, camera *components.CameraData) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if !anim.Ready() || anim.CurrentClip == nil {
			return
		}
		obj := components.Object.Get(entry)

		facing := cfg.DirectionRight
		if entry.HasComponent(components.Player) {
			facing = components.Player.Get(entry).Facing
		}

		// Anchor at bottom-center so feet line up with the collision box.
		x, y := worldToScreen(camera, screen, obj.X+obj.W/2, obj.Y+obj.H)

		// During a crossfade the outgoing clip is still drawn underneath,
		// fading as the incoming one fades in.
		if anim.PreviousClip != nil {
			drawClipFrame(screen, anim, anim.PreviousState, anim.PreviousClip.Frame(), float64(x), float64(y), facing, 1-anim.BlendWeight)
		}
		drawClipFrame(screen, anim, anim.CurrentState, anim.CurrentClip.Frame(), float64(x), float64(y), facing, anim.BlendWeight)
	})
}

func drawClipFrame(screen *ebiten.Image, anim *components.AnimationData, state cfg.StateID, frame int, x, y, facing float64, alpha float32) {
	sheet := anim.SpriteSheets[state]
	if sheet == nil || alpha <= 0 {
		return
	}

	sx := frame * anim.FrameWidth
	srcRect := image.Rect(sx, 0, sx+anim.FrameWidth, anim.FrameHeight)
	img := sheet.SubImage(srcRect).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
	if facing < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, drawOp)
}

func drawHitboxes(e *ecs.ECS, screen *ebiten.Image, camera *components.CameraData) {
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		x, y := worldToScreen(camera, screen, obj.X, obj.Y)
		w := float32(obj.W * cfg.Render.PixelsPerUnit)
		h := float32(obj.H * cfg.Render.PixelsPerUnit)
		vector.DrawFilledRect(screen, x, y, w, h, hitboxColor, false)
	})
}
