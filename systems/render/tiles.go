package render

import (
	"github.com/automoto/ingotown/assets/art"
	"github.com/automoto/ingotown/components"
	"github.com/automoto/ingotown/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawTiles draws decoration behind the solid and single-way layers.
// Single-way tiles are drawn as a thin ledge on the top of their cell.
func DrawTiles(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tiles == nil {
		return
	}
	cam, ok := camera(e)
	if !ok {
		return
	}

	const size = float64(tilemap.CellSize)
	for _, layer := range []tilemap.Layer{tilemap.LayerDecoration, tilemap.LayerSolid, tilemap.LayerSingleWay} {
		grid := level.Tiles.Grid(layer)
		if grid == nil {
			continue
		}
		h := size
		if layer == tilemap.LayerSingleWay {
			h = 2
		}
		for cy := 0; cy < grid.Height(); cy++ {
			for cx := 0; cx < grid.Width(); cx++ {
				id := grid.Tile(cx, cy)
				if id == tilemap.Empty {
					continue
				}
				x, y := project(cam, float64(cx)*size, float64(cy)*size)
				if !onScreen(screen, x, y, size, size) {
					continue
				}
				vector.FillRect(screen, float32(x), float32(y), float32(size), float32(h), art.TileColor(layer, id), false)
			}
		}
	}
}
