package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Sprinting bool
	// InteractTarget is the NPC picked by the last interaction probe, if any.
	InteractTarget donburi.Entity
	Interactions   int
}

var Player = donburi.NewComponentType[PlayerData]()
