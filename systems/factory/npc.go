package factory

import (
	"github.com/automoto/ingotown/archetypes"
	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/npc"
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/automoto/ingotown/shared/locations"
	"github.com/automoto/ingotown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateNPC(w donburi.World, space *resolv.Space, spec locations.NPCSpec, behavior npc.Interactor) *donburi.Entry {
	e := archetypes.NPC.Spawn(w)

	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = cfg.NPC.Width
	}
	if height <= 0 {
		height = cfg.NPC.Height
	}
	sprite := cfg.NPC.Sprite
	if spec.Sprite != nil {
		sprite = *spec.Sprite
	}

	x, y := CellToFeet(spec.Cell, height)
	body := gamemath.NewBody(x, y, width, height)
	body.Facing = gamemath.FacingLeft
	components.Body.SetValue(e, body)
	components.Character.SetValue(e, components.CharacterData{
		Name:   spec.Name,
		Sprite: sprite,
	})
	components.NPC.SetValue(e, components.NPCData{Behavior: behavior})

	attachObject(e, space, &body, tags.ResolvNPC)
	return e
}
