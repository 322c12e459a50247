package locations

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/ingotown/shared/tilemap"
)

const catalogue = `
locations:
  - id: town
    camera:
      follow: true
      offset: {x: 0, y: -8}
    player_start: {x: 2, y: 3}
    layers:
      solid: {path: town/solid.csv}
      single_way: {path: town/platforms.csv}
    npcs:
      - name: Smith
        cell: {x: 5, y: 3}
        behavior: talker
        lines: ["Hot forge today."]
  - id: mine
    camera:
      follow: false
    player_start: {x: 1, y: 1}
    layers:
      solid: {path: mine/mine.tmx, layer: solid}
`

func TestLoadResolvesPaths(t *testing.T) {
	fsys := fstest.MapFS{
		"data/locations.yaml": {Data: []byte(catalogue)},
	}
	c, err := Load(fsys, "data/locations.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Dir != "data" {
		t.Fatalf("Dir = %q", c.Dir)
	}
	town, idx, err := c.Find("town")
	if err != nil || idx != 0 {
		t.Fatalf("Find(town) = %v, %d, %v", town, idx, err)
	}
	if !town.Camera.Follow || town.Camera.Offset.Y != -8 {
		t.Fatalf("camera = %+v", town.Camera)
	}
	if town.PlayerStart != (Cell{X: 2, Y: 3}) {
		t.Fatalf("start = %+v", town.PlayerStart)
	}
	if len(town.NPCs) != 1 || town.NPCs[0].Lines[0] != "Hot forge today." {
		t.Fatalf("npcs = %+v", town.NPCs)
	}

	src := town.Sources(c.Dir)
	if src[tilemap.LayerSolid].Path != "data/town/solid.csv" {
		t.Fatalf("solid = %+v", src[tilemap.LayerSolid])
	}
	if src[tilemap.LayerSingleWay].Path != "data/town/platforms.csv" {
		t.Fatalf("single-way = %+v", src[tilemap.LayerSingleWay])
	}
	if _, ok := src[tilemap.LayerDecoration]; ok {
		t.Fatalf("unexpected decoration layer")
	}

	mine, _, _ := c.Find("mine")
	if got := mine.Sources(c.Dir)[tilemap.LayerSolid]; got.Layer != "solid" {
		t.Fatalf("tmx layer = %+v", got)
	}
}

func TestNextWraps(t *testing.T) {
	c, err := Parse([]byte(catalogue))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct{ from, want string }{
		{"town", "mine"},
		{"mine", "town"},
	}
	for _, tc := range cases {
		got, err := c.Next(tc.from)
		if err != nil || got != tc.want {
			t.Fatalf("Next(%s) = %q, %v; want %q", tc.from, got, err, tc.want)
		}
	}
	if _, err := c.Next("nowhere"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("Next(nowhere) err = %v", err)
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "locations: []", "no locations"},
		{"missing id", "locations:\n  - layers: {solid: {path: a.csv}}", "missing id"},
		{"duplicate", "locations:\n  - id: a\n    layers: {solid: {path: a.csv}}\n  - id: a\n    layers: {solid: {path: b.csv}}", "duplicate id"},
		{"no solid", "locations:\n  - id: a", "missing solid layer"},
		{"nameless npc", "locations:\n  - id: a\n    layers: {solid: {path: a.csv}}\n    npcs:\n      - behavior: talker", "npc without a name"},
		{"bad yaml", "locations: [", "unmarshal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "locations.yaml"); err == nil {
		t.Fatalf("expected error")
	}
}
