package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/ingotown/assets"
	"github.com/automoto/ingotown/assets/sprites"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/input"
	"github.com/automoto/ingotown/systems"
	"github.com/automoto/ingotown/systems/render"
	"github.com/automoto/ingotown/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	world   *world.World
	watcher *assets.Watcher
	sheet   *sprites.Sheet
	once    sync.Once
}

// NewPlatformerScene wraps a loaded world. watcher may be nil when hot
// reload is off.
func NewPlatformerScene(w *world.World, watcher *assets.Watcher, sheet *sprites.Sheet) *PlatformerScene {
	return &PlatformerScene{world: w, watcher: watcher, sheet: sheet}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	in := ps.world.Input()
	systems.PushInput(in, input.Poll())
	if systems.GetAction(in, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	if ps.watcher != nil {
		if changed := ps.watcher.Drain(); len(changed) > 0 {
			log.Printf("Data changed (%s), reloading", changed[0])
			if err := ps.world.Reload(); err != nil {
				log.Printf("Reload failed, keeping current location: %v", err)
			}
		}
	}

	ps.world.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = ecs.NewECS(ps.world.Donburi())
	render.Register(ps.ecs, ps.sheet)
}
