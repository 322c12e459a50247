package tilemap

import (
	"testing"
	"testing/fstest"
)

func TestGridOccupied(t *testing.T) {
	g, err := NewGrid([][]int{
		{-1, 3, -1},
		{0, -1, 7},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	cases := []struct {
		name   string
		cx, cy int
		want   bool
	}{
		{"tile", 1, 0, true},
		{"zero_id_is_a_tile", 0, 1, true},
		{"empty", 0, 0, false},
		{"left_of_grid", -1, 0, false},
		{"above_grid", 0, -1, false},
		{"right_of_grid", 3, 1, false},
		{"below_grid", 2, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.Occupied(c.cx, c.cy); got != c.want {
				t.Fatalf("Occupied(%d,%d) = %v, want %v", c.cx, c.cy, got, c.want)
			}
		})
	}

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
}

func TestNewGridRejectsRaggedRows(t *testing.T) {
	if _, err := NewGrid([][]int{{1, 2}, {3}}); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
}

func TestMapMissingLayerIsEmpty(t *testing.T) {
	solid, _ := NewGrid([][]int{{1}})
	m := &Map{Solid: solid}
	if !m.Occupied(LayerSolid, 0, 0) {
		t.Fatalf("solid cell should be occupied")
	}
	if m.Occupied(LayerSingleWay, 0, 0) {
		t.Fatalf("missing single-way layer should be empty")
	}
	if m.PixelWidth() != CellSize {
		t.Fatalf("PixelWidth = %d, want %d", m.PixelWidth(), CellSize)
	}
}

func TestLoadCSV(t *testing.T) {
	fsys := fstest.MapFS{
		"map/town_Collision.csv": {Data: []byte("-1,-1,-1\n-1, 4,-1\n12,12,12\n")},
		"map/ragged.csv":         {Data: []byte("1,2,3\n1,2\n")},
		"map/words.csv":          {Data: []byte("1,x\n")},
		"map/empty.csv":          {Data: []byte("")},
	}

	rows, err := LoadCSV(fsys, "map/town_Collision.csv")
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(rows) != 3 || rows[1][1] != 4 || rows[2][0] != 12 || rows[0][2] != Empty {
		t.Fatalf("unexpected rows %v", rows)
	}

	for _, name := range []string{"map/ragged.csv", "map/words.csv", "map/empty.csv", "map/missing.csv"} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCSV(fsys, name); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="8" tileheight="8" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="env" tilewidth="8" tileheight="8" tilecount="4" columns="2">
  <image source="env.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="Collision" width="3" height="2">
  <data encoding="csv">
0,1,0,
2,2,0
</data>
 </layer>
 <layer id="2" name="SingleWay" width="3" height="2">
  <data encoding="csv">
0,0,0,
0,0,0
</data>
 </layer>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"cave/cave.tmx": {Data: []byte(testTMX)}}

	rows, err := LoadTMX(fsys, "cave/cave.tmx", "Collision")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	want := [][]int{{Empty, 0, Empty}, {1, 1, Empty}}
	for y := range want {
		for x := range want[y] {
			if rows[y][x] != want[y][x] {
				t.Fatalf("rows = %v, want %v", rows, want)
			}
		}
	}

	if _, err := LoadTMX(fsys, "cave/cave.tmx", "Nope"); err == nil {
		t.Fatalf("expected error for missing layer")
	}
}

func TestLoadMap(t *testing.T) {
	fsys := fstest.MapFS{
		"a_Collision.csv": {Data: []byte("1,-1\n")},
		"a_SingleWay.csv": {Data: []byte("-1,5\n")},
	}

	m, err := LoadMap(fsys, map[Layer]Source{
		LayerSolid:     {Path: "a_Collision.csv"},
		LayerSingleWay: {Path: "a_SingleWay.csv"},
	})
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if !m.Occupied(LayerSolid, 0, 0) || m.Occupied(LayerSolid, 1, 0) {
		t.Fatalf("solid layer mismatch")
	}
	if !m.Occupied(LayerSingleWay, 1, 0) {
		t.Fatalf("single-way layer mismatch")
	}

	if _, err := LoadMap(fsys, map[Layer]Source{LayerSingleWay: {Path: "a_SingleWay.csv"}}); err == nil {
		t.Fatalf("expected error without solid layer")
	}
	if _, err := LoadMap(fsys, map[Layer]Source{LayerSolid: {Path: "a.json"}}); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
