// Package render draws the world through the camera. Renderers run on the
// donburi ecs draw loop and never change simulation state.
package render

import (
	"github.com/automoto/ingotown/assets/sprites"
	"github.com/automoto/ingotown/components"
	"github.com/automoto/ingotown/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

// Sheet is the character sheet used by DrawCharacters.
var Sheet *sprites.Sheet

// Register adds every renderer to e in draw order.
func Register(e *ecs.ECS, sheet *sprites.Sheet) {
	Sheet = sheet
	e.AddRenderer(LayerWorld, DrawTiles)
	e.AddRenderer(LayerWorld, DrawCharacters)
	e.AddRenderer(LayerOverlay, DrawSpeech)
	e.AddRenderer(LayerOverlay, DrawDebug)
}

func camera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// project maps a world point to screen space.
func project(cam *components.CameraData, x, y float64) (float64, float64) {
	return systems.WorldToScreen(cam, x, y)
}

func onScreen(screen *ebiten.Image, x, y, w, h float64) bool {
	b := screen.Bounds()
	return x+w >= 0 && y+h >= 0 && x <= float64(b.Dx()) && y <= float64(b.Dy())
}
