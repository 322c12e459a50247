package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Follow bool
	Offset math.Vec2
	// Position is the world point at the centre of the screen, valid in follow mode.
	Position math.Vec2
	// Viewport is the screen size in world units.
	Viewport math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
