package components

import (
	"github.com/automoto/ingotown/npc"
	"github.com/yohamta/donburi"
)

type NPCData struct {
	Behavior npc.Interactor
	Count    int // completed interactions
}

var NPC = donburi.NewComponentType[NPCData]()
