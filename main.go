package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/automoto/ingotown/assets"
	"github.com/automoto/ingotown/assets/sprites"
	"github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/fonts"
	"github.com/automoto/ingotown/scenes"
	"github.com/automoto/ingotown/shared/tilemap"
	"github.com/automoto/ingotown/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// SheetName is an optional PNG character sheet in the data directory.
const SheetName = "sprites.png"

type Game struct {
	scene scenes.Scene
}

func NewGame(w *world.World, watcher *assets.Watcher, sheet *sprites.Sheet) *Game {
	return &Game{scene: scenes.NewPlatformerScene(w, watcher, sheet)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func loadSheet(fsys fs.FS) *sprites.Sheet {
	sheet, err := sprites.LoadSheet(fsys, SheetName, tilemap.CellSize)
	if err == nil {
		log.Printf("Loaded sprite sheet %s", SheetName)
		return sheet
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load %s, using placeholder: %v", SheetName, err)
	}
	return sprites.NewPlaceholderSheet(tilemap.CellSize)
}

func main() {
	dataDir := flag.String("data", config.Debug.DataDir, "Load locations from this directory instead of the embedded data")
	location := flag.String("location", config.Debug.StartLocation, "Location to start in (empty = first in catalogue)")
	watch := flag.Bool("watch", config.Debug.Watch, "Reload the current location when files under -data change")
	debug := flag.Bool("debug", config.Debug.Overlay, "Show the debug overlay")
	flag.Parse()

	config.Debug.DataDir = *dataDir
	config.Debug.StartLocation = *location
	config.Debug.Watch = *watch
	config.Debug.Overlay = *debug

	if config.Debug.Watch && config.Debug.DataDir == "" {
		log.Fatalf("-watch needs -data: the embedded data cannot change")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	fsys := assets.Open(config.Debug.DataDir)
	catalogue, err := assets.LoadCatalogue(fsys)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}

	w := world.New(fsys, catalogue)
	start := config.Debug.StartLocation
	if start == "" {
		start = catalogue.Locations[0].ID
	}
	if err := w.Load(start); err != nil {
		log.Fatalf("Failed to load location %q: %v", start, err)
	}
	log.Printf("Loaded location: %s", start)

	var watcher *assets.Watcher
	if config.Debug.Watch {
		watcher, err = assets.NewWatcher(config.Debug.DataDir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", config.Debug.DataDir, err)
		}
		defer watcher.Close()
		log.Printf("Watching %s for changes", config.Debug.DataDir)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Ingotown")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(w, watcher, loadSheet(fsys))); err != nil {
		log.Fatal(err)
	}
}
