package systems

import (
	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/yohamta/donburi"
)

// PushInput records this frame's held actions, moving the last frame's
// state to Previous. Hosts call it once per frame before the systems run.
func PushInput(input *components.InputData, held [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = held
}

// GetAction returns the temporal state of an action
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func getInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
