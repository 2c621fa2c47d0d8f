package systems

import (
	"math"
	"testing"

	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name  string
		state cfg.StateID
		delta float64
		want  float64
	}{
		{"idle does not move", cfg.Idle, 0.1, 0},
		{"punching does not move", cfg.Punching, 0.1, 0},
		{"kicking does not move", cfg.Kicking, 0.1, 0},
		{"running", cfg.Running, 0.1, 0.4},
		{"running scales with delta", cfg.Running, 0.2, 0.8},
		{"retreating is slower", cfg.RunningBackwards, 0.1, -0.2},
		{"zero delta", cfg.Running, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Displacement(tt.state, tt.delta)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("displacement = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampToArenaIdempotent(t *testing.T) {
	w := cfg.Player.CollisionWidth
	min := cfg.Arena.WallThickness
	max := cfg.Arena.WallThickness + 2*cfg.Arena.HalfWidth - w

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", ArenaCenter(), ArenaCenter()},
		{"at min", min, min},
		{"at max", max, max},
		{"past left wall", min - 3, min},
		{"past right wall", max + 3, max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampToArena(tt.x, w)
			if got != tt.want {
				t.Fatalf("clamp(%v) = %v, want %v", tt.x, got, tt.want)
			}
			// Clamping an already clamped value must be a no-op.
			if again := clampToArena(got, w); again != got {
				t.Fatalf("clamp not idempotent: %v then %v", got, again)
			}
		})
	}
}

func newLocomotionWorld(t *testing.T, delta float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e)
	player := factory.CreatePlayer(e, 0, "ninja")

	clockEntry := e.World.Entry(e.World.Create(components.Clock))
	components.Clock.Get(clockEntry).Delta = delta
	return e, player
}

func TestUpdateLocomotionMovesRunner(t *testing.T) {
	e, player := newLocomotionWorld(t, 0.1)

	state := components.State.Get(player)
	state.CurrentState = cfg.Running
	startX := components.Object.Get(player).X

	UpdateLocomotion(e)

	got := components.Object.Get(player).X - startX
	want := cfg.Player.ForwardSpeed * 0.1
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("moved %v, want %v", got, want)
	}
}

func TestUpdateLocomotionStopsAtWall(t *testing.T) {
	e, player := newLocomotionWorld(t, 0.25)

	state := components.State.Get(player)
	state.CurrentState = cfg.Running

	// Run into the right wall for long enough to cross the whole arena.
	for i := 0; i < 40; i++ {
		UpdateLocomotion(e)
	}

	obj := components.Object.Get(player)
	maxX := cfg.Arena.WallThickness + 2*cfg.Arena.HalfWidth - obj.W
	if obj.X > maxX+1e-9 {
		t.Fatalf("x = %v, beyond arena bound %v", obj.X, maxX)
	}

	// One more tick at the boundary must not move or oscillate.
	atWall := obj.X
	UpdateLocomotion(e)
	if obj.X != atWall {
		t.Fatalf("x moved from %v to %v while pinned at the wall", atWall, obj.X)
	}
}

func TestAxisPositionRoundTrip(t *testing.T) {
	e, player := newLocomotionWorld(t, 0.1)

	// Spawned at the arena origin, the player's axis position is zero.
	obj := components.Object.Get(player)
	if got := AxisPosition(obj.Object); math.Abs(got) > 1e-9 {
		t.Fatalf("axis position at spawn = %v, want 0", got)
	}

	components.State.Get(player).CurrentState = cfg.RunningBackwards
	UpdateLocomotion(e)
	if got := AxisPosition(obj.Object); got >= 0 {
		t.Fatalf("axis position after retreat = %v, want negative", got)
	}
}
