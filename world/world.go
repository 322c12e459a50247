// Package world owns everything that changes while the game runs: the
// entity world, the current location's tiles and the interaction space.
package world

import (
	"fmt"
	"io/fs"
	"log"
	"math"

	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/npc"
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/automoto/ingotown/shared/locations"
	"github.com/automoto/ingotown/shared/tilemap"
	"github.com/automoto/ingotown/systems"
	"github.com/automoto/ingotown/systems/factory"
	"github.com/automoto/ingotown/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// System is one step of the frame update.
type System func(w donburi.World)

type World struct {
	fsys      fs.FS
	catalogue *locations.Catalogue

	world  donburi.World
	level  *donburi.Entry
	input  *donburi.Entry
	camera *donburi.Entry
	space  *donburi.Entry
	player *donburi.Entry

	systems []System
}

// New creates an empty world. Nothing is loaded until Load is called.
func New(fsys fs.FS, catalogue *locations.Catalogue) *World {
	w := donburi.NewWorld()
	return &World{
		fsys:      fsys,
		catalogue: catalogue,
		world:     w,
		level:     factory.CreateLevel(w),
		input:     factory.CreateInput(w),
		camera:    factory.CreateCamera(w, float64(cfg.C.Width), float64(cfg.C.Height)),
		systems: []System{
			systems.UpdatePlayer,
			systems.UpdateInteraction,
			systems.UpdatePhysics,
			systems.UpdateObjects,
			systems.UpdateSpeech,
			systems.UpdateCamera,
		},
	}
}

type roster struct {
	spec     locations.NPCSpec
	behavior npc.Interactor
}

// Load switches to location id. Layouts and NPC behaviours are built
// before anything changes, so a failed load leaves the current location
// running.
func (w *World) Load(id string) error {
	loc, _, err := w.catalogue.Find(id)
	if err != nil {
		return err
	}
	tiles, err := tilemap.LoadMap(w.fsys, loc.Sources(w.catalogue.Dir))
	if err != nil {
		return fmt.Errorf("load %s: %w", id, err)
	}
	npcs := make([]roster, 0, len(loc.NPCs))
	for _, spec := range loc.NPCs {
		behavior, err := npc.Build(spec, w.fsys, w.catalogue.Dir)
		if err != nil {
			return fmt.Errorf("load %s: %w", id, err)
		}
		npcs = append(npcs, roster{spec: spec, behavior: behavior})
	}

	w.clearRoster()

	cell := cfg.Interaction.SpaceCellSize
	spaceW := int(math.Max(float64(tiles.PixelWidth()), 1)) + cell
	spaceH := int(math.Max(float64(tiles.PixelHeight()), 1)) + cell
	w.space = factory.CreateSpace(w.world, spaceW, spaceH, cell, cell)
	space := components.Space.Get(w.space)

	if w.player == nil {
		w.player = factory.CreatePlayer(w.world, space, loc.PlayerStart)
	} else {
		x, y := factory.CellToFeet(loc.PlayerStart, components.Body.Get(w.player).H)
		components.Body.Get(w.player).Teleport(x, y)
		factory.MoveToSpace(w.player, space)
	}
	for _, n := range npcs {
		factory.CreateNPC(w.world, space, n.spec, n.behavior)
	}

	camera := components.Camera.Get(w.camera)
	camera.Follow = loc.Camera.Follow
	camera.Offset = dmath.NewVec2(loc.Camera.Offset.X, loc.Camera.Offset.Y)

	level := components.Level.Get(w.level)
	level.Tiles = tiles
	level.Location = loc

	systems.UpdateObjects(w.world)
	systems.UpdateCamera(w.world)
	return nil
}

// clearRoster removes the NPCs and the space of the current location.
func (w *World) clearRoster() {
	var stale []donburi.Entity
	tags.NPC.Each(w.world, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		w.world.Remove(e)
	}
	if w.space != nil && w.space.Valid() {
		w.world.Remove(w.space.Entity())
	}
	w.space = nil
}

// Reload re-reads the current location from the filesystem.
func (w *World) Reload() error {
	loc := w.Location()
	if loc == nil {
		return fmt.Errorf("reload: no location loaded")
	}
	return w.Load(loc.ID)
}

// Next moves on to the location after the current one in catalogue order.
func (w *World) Next() error {
	loc := w.Location()
	if loc == nil {
		return w.Load(w.catalogue.Locations[0].ID)
	}
	id, err := w.catalogue.Next(loc.ID)
	if err != nil {
		return err
	}
	return w.Load(id)
}

// Update advances the world by one frame. Input must already be pushed.
func (w *World) Update() {
	if w.Location() == nil {
		return
	}
	if systems.GetAction(w.Input(), cfg.ActionNextLocation).JustPressed {
		if err := w.Next(); err != nil {
			log.Printf("Failed to switch location: %v", err)
		}
	}

	components.Level.Get(w.level).Frame++
	for _, s := range w.systems {
		s(w.world)
	}
}

func (w *World) Input() *components.InputData {
	return components.Input.Get(w.input)
}

// Player returns the player entry, or nil before the first Load.
func (w *World) Player() *donburi.Entry {
	return w.player
}

// PlayerBody is a shortcut to the player's kinematic state.
func (w *World) PlayerBody() *gamemath.Body {
	if w.player == nil {
		return nil
	}
	return components.Body.Get(w.player)
}

func (w *World) Tiles() *tilemap.Map {
	return components.Level.Get(w.level).Tiles
}

func (w *World) Location() *locations.Location {
	return components.Level.Get(w.level).Location
}

func (w *World) Camera() *components.CameraData {
	return components.Camera.Get(w.camera)
}

func (w *World) Donburi() donburi.World {
	return w.world
}

func (w *World) Frame() int {
	return components.Level.Get(w.level).Frame
}

func (w *World) Catalogue() *locations.Catalogue {
	return w.catalogue
}
