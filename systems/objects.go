package systems

import (
	"github.com/automoto/ingotown/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects copies each body's footprint into its resolv object.
func UpdateObjects(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Body) {
			x, y, _, _ := components.Body.Get(e).Bounds()
			obj.X, obj.Y = x, y
		}
		if obj.Space != nil {
			obj.Update()
		}
	})
}
