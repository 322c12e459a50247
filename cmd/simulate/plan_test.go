package main

import (
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/ingotown/assets"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/shared/locations"
	"github.com/automoto/ingotown/shared/tilemap"
	"github.com/automoto/ingotown/world"
)

const catalogue = `
locations:
  - id: town
    camera: {follow: true}
    player_start: {x: 2, y: 9}
    layers:
      solid: {path: solid.csv}
    npcs:
      - name: Smith
        cell: {x: 3, y: 9}
        lines: ["Hot forge today."]
  - id: yard
    camera: {follow: false}
    player_start: {x: 5, y: 9}
    layers:
      solid: {path: solid.csv}
`

func floor(w, h, row int) []byte {
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			if y == row {
				b.WriteString("1")
			} else {
				b.WriteString(strconv.Itoa(tilemap.Empty))
			}
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func newWorld(t *testing.T) *world.World {
	t.Helper()
	fsys := fstest.MapFS{
		"locations.yaml": {Data: []byte(catalogue)},
		"solid.csv":      {Data: floor(20, 12, 10)},
	}
	c, err := locations.Load(fsys, "locations.yaml")
	if err != nil {
		t.Fatalf("catalogue: %v", err)
	}
	w := world.New(fsys, c)
	if err := w.Load("town"); err != nil {
		t.Fatalf("Load(town): %v", err)
	}
	return w
}

func mustPlan(t *testing.T, src string) *Plan {
	t.Helper()
	p, err := ParsePlan([]byte(src))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	return p
}

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		frames  int
		wantErr bool
	}{
		{"empty", "steps: []", 0, false},
		{"idle and walk", "steps:\n  - frames: 10\n  - frames: 5\n    hold: [right, sprint]\n", 15, false},
		{"unknown action", "steps:\n  - frames: 1\n    hold: [fly]\n", 0, true},
		{"none is not an action", "steps:\n  - frames: 1\n    hold: [none]\n", 0, true},
		{"zero frames", "steps:\n  - frames: 0\n", 0, true},
		{"not yaml", "steps: [", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePlan([]byte(tt.src))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlan: %v", err)
			}
			if p.Frames() != tt.frames {
				t.Fatalf("Frames() = %d, want %d", p.Frames(), tt.frames)
			}
		})
	}
}

func TestParsePlanResolvesActions(t *testing.T) {
	p := mustPlan(t, "location: yard\nsteps:\n  - frames: 3\n    hold: [left, jump]\n")
	if p.Location != "yard" {
		t.Fatalf("location = %q", p.Location)
	}
	held := p.Steps[0].held
	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		want := id == cfg.ActionMoveLeft || id == cfg.ActionJump
		if held[id] != want {
			t.Fatalf("%s held = %v, want %v", id, held[id], want)
		}
	}
}

func TestRunRecordsEachInteraction(t *testing.T) {
	w := newWorld(t)
	p := mustPlan(t, `
steps:
  - frames: 2
  - frames: 1
    hold: [interact]
  - frames: 3
  - frames: 1
    hold: [interact]
`)
	r := Run(w, p)
	if r.Frame != 7 {
		t.Fatalf("frame = %d, want 7", r.Frame)
	}
	if len(r.Lines) != 2 {
		t.Fatalf("lines = %+v, want 2", r.Lines)
	}
	for i, wantFrame := range []int{3, 7} {
		l := r.Lines[i]
		if l.Name != "Smith" || l.Text != "Hot forge today." || l.Frame != wantFrame {
			t.Fatalf("line %d = %+v", i, l)
		}
	}
	if !r.Grounded || r.Location != "town" {
		t.Fatalf("report = %+v", r)
	}
}

func TestRunHoldingInteractSpeaksOnce(t *testing.T) {
	w := newWorld(t)
	r := Run(w, mustPlan(t, "steps:\n  - frames: 10\n    hold: [interact]\n"))
	if len(r.Lines) != 1 {
		t.Fatalf("lines = %+v, want 1", r.Lines)
	}
}

func TestRunNextLocation(t *testing.T) {
	w := newWorld(t)
	r := Run(w, mustPlan(t, "steps:\n  - frames: 1\n    hold: [next]\n  - frames: 2\n"))
	if r.Location != "yard" {
		t.Fatalf("location = %q, want yard", r.Location)
	}
}

func TestRunEmbeddedWalk(t *testing.T) {
	fsys := assets.Data()
	c, err := assets.LoadCatalogue(fsys)
	if err != nil {
		t.Fatalf("catalogue: %v", err)
	}
	w := world.New(fsys, c)
	if err := w.Load(c.Locations[0].ID); err != nil {
		t.Fatalf("Load: %v", err)
	}
	startX := w.PlayerBody().X

	r := Run(w, mustPlan(t, "steps:\n  - frames: 60\n    hold: [right]\n"))
	if r.Frame != 60 {
		t.Fatalf("frame = %d", r.Frame)
	}
	if r.X <= startX {
		t.Fatalf("x = %.1f, did not move right of %.1f", r.X, startX)
	}
}
