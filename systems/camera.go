package systems

import (
	"math"

	"github.com/automoto/ingotown/components"
	"github.com/automoto/ingotown/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera centres a follow camera on the player, clamped so the view
// never scrolls past either horizontal edge of the map.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if !camera.Follow {
		return
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tiles == nil {
		return
	}

	halfW := camera.Viewport.X / 2
	levelWidth := float64(level.Tiles.PixelWidth())

	// Left edge wins when the map is narrower than the screen.
	targetX := math.Max(halfW, math.Min(levelWidth-halfW, body.X))

	camera.Position.X = targetX
	camera.Position.Y = body.Y
}

// WorldToScreen projects a world point through the camera. Every renderer
// draws through this.
func WorldToScreen(camera *components.CameraData, x, y float64) (float64, float64) {
	if !camera.Follow {
		return x + camera.Offset.X, y + camera.Offset.Y
	}
	return x - camera.Position.X + camera.Viewport.X/2,
		y - camera.Position.Y + camera.Viewport.Y/2 + camera.Offset.Y
}
