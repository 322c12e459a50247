package factory

import (
	"github.com/automoto/ingotown/archetypes"
	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/automoto/ingotown/shared/locations"
	"github.com/automoto/ingotown/shared/tilemap"
	"github.com/automoto/ingotown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CellToFeet converts the top-left cell of an h-tile tall footprint into
// the body anchor (left edge, feet).
func CellToFeet(c locations.Cell, h int) (x, y float64) {
	return float64(c.X * tilemap.CellSize), float64((c.Y + h) * tilemap.CellSize)
}

func CreatePlayer(w donburi.World, space *resolv.Space, start locations.Cell) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	x, y := CellToFeet(start, cfg.Player.Height)
	body := gamemath.NewBody(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Body.SetValue(player, body)
	components.Character.SetValue(player, components.CharacterData{
		Name:   "player",
		Sprite: cfg.Player.Sprite,
	})
	components.Player.SetValue(player, components.PlayerData{
		InteractTarget: donburi.Null,
	})

	attachObject(player, space, &body, tags.ResolvPlayer)
	return player
}

// attachObject gives entry a resolv mirror of body and adds it to space.
func attachObject(entry *donburi.Entry, space *resolv.Space, body *gamemath.Body, tag string) {
	bx, by, bw, bh := body.Bounds()
	obj := resolv.NewObject(bx, by, bw, bh)
	obj.AddTags("character", tag)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}
}

// MoveToSpace re-homes entry's resolv object into space, used when the
// player survives a location switch.
func MoveToSpace(entry *donburi.Entry, space *resolv.Space) {
	obj := components.Object.Get(entry)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	space.Add(obj.Object)
}
