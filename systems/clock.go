package systems

import (
	"time"

	"github.com/automoto/dojoduel/components"
	"github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall time elapsed since the previous tick and
// publishes it for every delta-driven system. Must run first. Deltas are
// clamped to config.MaxTickDelta so a window drag or a paused debugger
// does not teleport characters on the next tick.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	now := time.Now()
	if clock.Last.IsZero() {
		clock.Delta = 0
	} else {
		clock.Delta = now.Sub(clock.Last).Seconds()
		if clock.Delta > config.MaxTickDelta {
			clock.Delta = config.MaxTickDelta
		}
	}
	clock.Last = now
}

// TickDelta returns the current tick's elapsed seconds.
func TickDelta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
