package factory

import (
	"github.com/automoto/ingotown/archetypes"
	"github.com/automoto/ingotown/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, width, height float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Viewport: math.NewVec2(width, height),
	})
	return camera
}
