package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData carries the variable elapsed time of the current tick.
// Singleton component; every delta-driven system reads Delta instead of
// assuming a fixed tick rate.
type ClockData struct {
	Delta float64 // seconds since the previous tick, clamped
	Last  time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
