package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	NPC    = donburi.NewTag().SetName("NPC")
)

// Resolv tags for the interaction broadphase
const (
	ResolvPlayer = "player"
	ResolvNPC    = "npc"
	ResolvProbe  = "probe"
)
