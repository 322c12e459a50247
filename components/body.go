package components

import (
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Body is the kinematic state stepped by the physics system.
var Body = donburi.NewComponentType[gamemath.Body]()
