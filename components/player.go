package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // config.DirectionRight or config.DirectionLeft
}

var Player = donburi.NewComponentType[PlayerData]()
