package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/ingotown/npc"
	"github.com/automoto/ingotown/shared/tilemap"
)

func TestEmbeddedLocationsLoad(t *testing.T) {
	fsys := Data()
	c, err := LoadCatalogue(fsys)
	if err != nil {
		t.Fatalf("LoadCatalogue: %v", err)
	}
	for _, loc := range c.Locations {
		t.Run(loc.ID, func(t *testing.T) {
			m, err := tilemap.LoadMap(fsys, loc.Sources(c.Dir))
			if err != nil {
				t.Fatalf("LoadMap: %v", err)
			}
			if m.Occupied(tilemap.LayerSolid, loc.PlayerStart.X, loc.PlayerStart.Y) {
				t.Fatalf("player starts inside a wall")
			}
			for _, spec := range loc.NPCs {
				if m.Occupied(tilemap.LayerSolid, spec.Cell.X, spec.Cell.Y) {
					t.Fatalf("%s starts inside a wall", spec.Name)
				}
				if _, err := npc.Build(spec, fsys, c.Dir); err != nil {
					t.Fatalf("Build: %v", err)
				}
			}
		})
	}
}

func TestWatcherReportsDataFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "town")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	layout := filepath.Join(sub, "solid.csv")
	if err := os.WriteFile(layout, []byte("1,1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != layout {
			t.Fatalf("event for %s, want %s", name, layout)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", layout)
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	sub := filepath.Join(dir, "quarry")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	layout := filepath.Join(sub, "solid.csv")

	// The new directory is added asynchronously; keep touching the layout
	// until a write inside it is reported.
	deadline := time.After(2 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		if err := os.WriteFile(layout, []byte("1,1\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		select {
		case name := <-w.Events:
			if name == layout {
				return
			}
		case <-tick.C:
		case <-deadline:
			t.Fatalf("no event for %s", layout)
		}
	}
}
