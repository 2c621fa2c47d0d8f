package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dojoduel/assets"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/systems"
	"github.com/automoto/dojoduel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the fight: two fighters in a walled strip, one of them
// controllable.
type ArenaScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	systems.PreloadAllSFX()

	// Rig decode runs off the main goroutine. Fighters spawn before it
	// finishes; the rig and animation systems pick the result up whenever
	// it lands.
	assets.Characters.LoadAsync("ninja", "assets/characters/ninja", cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	assets.Characters.LoadAsync("dummy", "assets/characters/dummy", cfg.Player.FrameWidth, cfg.Player.FrameHeight)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Tick order matters: the clock feeds every delta consumer, input
	// feeds the state machine, and the dispatcher has to see transitions
	// before locomotion and combat read the resulting state.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateRigs)
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateHitboxes)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)

	as.ecs = ecs

	factory.CreateArena(as.ecs)
	factory.CreateCamera(as.ecs)

	factory.CreatePlayer(as.ecs, -cfg.Arena.HalfWidth/2, "ninja")
	factory.CreateDummy(as.ecs, cfg.Arena.HalfWidth/2, "dummy")
}
