package systems

import (
	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/yohamta/donburi"
)

// UpdatePhysics steps every character's body against the current tiles.
// Characters move one after another, never in parallel.
func UpdatePhysics(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tiles == nil {
		return
	}
	params := cfg.Physics.Params()
	components.Body.Each(w, func(e *donburi.Entry) {
		components.Body.Get(e).Step(level.Tiles, params)
	})
}
