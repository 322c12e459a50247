package components

import (
	cfg "github.com/automoto/ingotown/config"
	"github.com/yohamta/donburi"
)

// ActionState is one action's state this frame, derived from two frames of
// held flags.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the only thing the core reads from the host: which actions
// were held this frame and last frame. The window poller and the headless
// simulator both fill it.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
