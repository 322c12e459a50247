package render

import (
	"github.com/automoto/ingotown/assets/animations"
	"github.com/automoto/ingotown/components"
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Per-entity animation state, kept out of the simulation components.
var poses = map[donburi.Entity]*animations.Player{}

// DrawCharacters draws every character's current frame, mirrored when it
// faces left.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	if Sheet == nil {
		return
	}
	cam, ok := camera(e)
	if !ok {
		return
	}

	seen := make(map[donburi.Entity]bool, len(poses))
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Body) {
			return
		}
		character := components.Character.Get(entry)
		body := components.Body.Get(entry)

		p, ok := poses[entry.Entity()]
		if !ok {
			p = &animations.Player{}
			poses[entry.Entity()] = p
		}
		seen[entry.Entity()] = true
		column := p.Step(body)

		bx, by, bw, bh := body.Bounds()
		x, y := project(cam, bx, by)
		if !onScreen(screen, x, y, bw, bh) {
			return
		}

		frame := Sheet.Frame(character.Sprite, column)
		size := float64(Sheet.Size())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bw/size, bh/size)
		if body.Facing == gamemath.FacingLeft {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(bw, 0)
		}
		op.GeoM.Translate(x, y)
		screen.DrawImage(frame, op)
	})

	// Forget entities removed by a location switch.
	for id := range poses {
		if !seen[id] {
			delete(poses, id)
		}
	}
}
